package bookmarks

import "errors"

var (
	// ErrBookmarkNotFound indicates the bookmark doesn't exist or isn't the actor's
	ErrBookmarkNotFound = errors.New("bookmark not found")

	// ErrPostNotFound indicates the bookmarked post doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrAlreadyBookmarked indicates a duplicate (user, post)
	ErrAlreadyBookmarked = errors.New("post already bookmarked")

	// ErrNotAuthorized indicates an anonymous actor
	ErrNotAuthorized = errors.New("authentication required")
)

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrBookmarkNotFound) || errors.Is(err, ErrPostNotFound)
}
