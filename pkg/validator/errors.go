package validator

import "errors"

// Common validation errors shared across the application.
var (
	// ErrValidationFailed is returned when validation fails without a more specific reason.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidFormat is returned when a field has an invalid format.
	ErrInvalidFormat = errors.New("invalid format")
)
