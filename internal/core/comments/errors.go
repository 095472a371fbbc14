package comments

import "errors"

var (
	// ErrCommentNotFound indicates the requested comment doesn't exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrPostNotFound indicates the commented post doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrParentNotFound indicates the parent comment doesn't exist
	ErrParentNotFound = errors.New("parent comment not found")

	// ErrParentMismatch indicates the parent comment belongs to a different post
	ErrParentMismatch = errors.New("parent comment belongs to a different post")

	// ErrMaxDepthExceeded indicates the reply would nest deeper than MaxNestingDepth
	ErrMaxDepthExceeded = errors.New("maximum comment nesting depth exceeded")

	// ErrContentTooLong indicates comment content exceeds 500 graphemes
	ErrContentTooLong = errors.New("comment content exceeds 500 graphemes")

	// ErrContentEmpty indicates comment content is empty
	ErrContentEmpty = errors.New("comment content is required")

	// ErrNotAuthorized indicates the user is not authorized to perform this action
	ErrNotAuthorized = errors.New("not authorized")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCommentNotFound) ||
		errors.Is(err, ErrParentNotFound) ||
		errors.Is(err, ErrPostNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrParentMismatch) ||
		errors.Is(err, ErrMaxDepthExceeded) ||
		errors.Is(err, ErrContentTooLong) ||
		errors.Is(err, ErrContentEmpty)
}
