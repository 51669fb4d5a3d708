package common

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable is returned when the store cannot be reached or opened.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ValidationError reports caller input that violates a precondition.
// The attempted write is never performed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for the given field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ReferentialError reports a write that references a menu item that does not exist.
type ReferentialError struct {
	MenuID int64
	Err    error
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("menu item %d does not exist", e.MenuID)
}

func (e *ReferentialError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsReferentialError reports whether err carries a ReferentialError.
func IsReferentialError(err error) bool {
	var re *ReferentialError
	return errors.As(err, &re)
}

// IsStorageUnavailable reports whether err wraps ErrStorageUnavailable.
func IsStorageUnavailable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}
