package subscriptions

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the data access interface for subscriptions
type Repository interface {
	// Create inserts the edge; returns ErrAlreadySubscribed on a duplicate pair
	Create(ctx context.Context, sub *Subscription) (*Subscription, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Subscription, error)
	GetByPair(ctx context.Context, followerID, followingID uuid.UUID) (*Subscription, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Subscription, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ListFollowers returns edges pointing at userID with the given status, newest first
	ListFollowers(ctx context.Context, userID uuid.UUID, status Status) ([]*SubscriptionView, error)

	// ListFollowing returns edges leaving userID with the given status, newest first
	ListFollowing(ctx context.Context, userID uuid.UUID, status Status) ([]*SubscriptionView, error)

	// GetOutgoing returns the ids userID follows, any status
	GetOutgoing(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// IsSubscribed reports whether any edge follower->following exists, any status
	IsSubscribed(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
}

// UserLookup resolves the privacy of a user; returns ErrUserNotFound when absent
type UserLookup interface {
	IsPrivate(ctx context.Context, userID uuid.UUID) (bool, error)
}

// Service defines the business logic interface for subscriptions
type Service interface {
	// Subscribe creates a pending edge for private targets and an approved one otherwise
	Subscribe(ctx context.Context, followerID, followingID uuid.UUID) (*Subscription, error)
	GetSubscription(ctx context.Context, id uuid.UUID) (*Subscription, error)

	// Approve and Reject are restricted to the followed user
	Approve(ctx context.Context, actorID, id uuid.UUID) (*Subscription, error)
	Reject(ctx context.Context, actorID, id uuid.UUID) error

	// Unsubscribe may be called by either end of the edge
	Unsubscribe(ctx context.Context, actorID, id uuid.UUID) error

	Followers(ctx context.Context, userID uuid.UUID, status Status) ([]*SubscriptionView, error)
	Following(ctx context.Context, userID uuid.UUID, status Status) ([]*SubscriptionView, error)
	PendingRequests(ctx context.Context, actorID uuid.UUID) ([]*SubscriptionView, error)
}
