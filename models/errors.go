package models

import (
	"errors"
	"fmt"
)

// ValidationError is returned when a document fails write-time validation.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Unwrap exposes the underlying sentinel, if any.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// WrapValidationError reports err as a validation failure on field.
func WrapValidationError(field string, err error) error {
	return &ValidationError{Field: field, Reason: err.Error(), Err: err}
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
