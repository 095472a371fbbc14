package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for common post operations
var (
	// ErrPostNotFound is returned when a post lookup finds no matching record
	ErrPostNotFound = errors.New("post not found")

	// ErrAuthorNotFound is returned when the author account no longer exists
	ErrAuthorNotFound = errors.New("author not found")

	// ErrNotAuthorized is returned when the actor is not the post's author
	ErrNotAuthorized = errors.New("not authorized to modify this post")

	// ErrContentEmpty is returned when post content is blank
	ErrContentEmpty = errors.New("post content is required")

	// ErrContentTooLong is returned when post content exceeds MaxContentLength graphemes
	ErrContentTooLong = errors.New("post content too long")
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
// Content sentinels count as validation failures
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr) || errors.Is(err, ErrContentEmpty) || errors.Is(err, ErrContentTooLong)
}

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound) || errors.Is(err, ErrAuthorNotFound)
}
