package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an analysis does not exist
	ErrNotFound = errors.New("analysis not found")

	// ErrEmptyUpload is returned when the uploaded file has no content
	ErrEmptyUpload = errors.New("uploaded file is empty")

	// ErrTooLarge is returned when the upload exceeds the configured size limit
	ErrTooLarge = errors.New("uploaded file exceeds the size limit")

	// ErrCodeExhausted is returned when a unique analysis code could not be
	// generated within the attempt budget
	ErrCodeExhausted = errors.New("could not generate unique analysis code")

	// ErrIllegalTransition is returned when a status update violates the
	// OPEN -> RUNNING -> DONE/FAILED state machine
	ErrIllegalTransition = errors.New("illegal status transition")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
