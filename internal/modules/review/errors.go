package review

import "errors"

var (
	ErrInvalidTarget  = errors.New("review must target exactly one listing")
	ErrTargetNotFound = errors.New("review target not found")
)
