package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for common post operations
var (
	// ErrNotFound is returned when no post exists for the given id
	ErrNotFound = errors.New("post not found")

	// ErrNotAuthenticated is returned when an operation requires a
	// requester identity and none was provided
	ErrNotAuthenticated = errors.New("authentication required")

	// ErrNotOwner is returned when the requester is authenticated but
	// is not the post's author
	ErrNotOwner = errors.New("requester is not the post author")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// IsNotFound checks if error means the post does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
