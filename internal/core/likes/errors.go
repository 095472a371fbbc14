package likes

import "errors"

var (
	// ErrPostNotFound indicates the liked post doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrNotAuthorized indicates an anonymous actor
	ErrNotAuthorized = errors.New("authentication required")
)

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound)
}
