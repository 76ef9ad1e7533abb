package follows

import (
	"errors"
	"fmt"
)

// Sentinel errors for follow operations
var (
	// ErrEdgeNotFound is returned when no follow edge exists for the pair
	ErrEdgeNotFound = errors.New("follow edge not found")

	// ErrEdgeExists is returned by the repository when an insert hits the
	// composite-key constraint (the pair is already followed)
	ErrEdgeExists = errors.New("follow edge already exists")

	// ErrSelfFollow is returned when a user tries to follow themselves
	ErrSelfFollow = errors.New("users cannot follow themselves")
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
