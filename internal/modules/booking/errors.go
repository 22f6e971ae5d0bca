package booking

import "errors"

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrServiceNotFound  = errors.New("moving service not found")
	ErrInvalidDates     = errors.New("check-out must be after check-in")
)
