package subscriptions

import (
	"errors"
	"fmt"
)

var (
	// ErrSubscriptionNotFound indicates no subscription matched
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrUserNotFound indicates one end of the edge does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrAlreadySubscribed indicates the ordered pair already has a subscription
	ErrAlreadySubscribed = errors.New("already subscribed to this user")

	// ErrNotAuthorized indicates the actor is not allowed to act on this subscription
	ErrNotAuthorized = errors.New("not authorized to manage this subscription")

	// ErrAlreadyApproved indicates an approve call on an approved subscription
	ErrAlreadyApproved = errors.New("subscription already approved")
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

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSubscriptionNotFound) || errors.Is(err, ErrUserNotFound)
}

// IsConflict checks if error is a state conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadySubscribed) || errors.Is(err, ErrAlreadyApproved)
}
