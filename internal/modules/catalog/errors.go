package catalog

import "errors"

var (
	ErrInvalidType      = errors.New("invalid property type")
	ErrInvalidPriceType = errors.New("invalid price type")
	ErrInvalidManagedBy = errors.New("invalid managed_by value")
)
