package reposts

import (
	"errors"
	"fmt"
)

var (
	// ErrRepostNotFound indicates the repost doesn't exist
	ErrRepostNotFound = errors.New("repost not found")

	// ErrPostNotFound indicates the original post doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrAlreadyReposted indicates the user already reposted this post
	ErrAlreadyReposted = errors.New("post already reposted")

	// ErrNotAuthorized indicates an anonymous actor
	ErrNotAuthorized = errors.New("authentication required")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRepostNotFound) || errors.Is(err, ErrPostNotFound)
}
