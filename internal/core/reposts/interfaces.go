package reposts

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the data access interface for reposts
// Create and Delete recompute posts.repost_count in the same transaction
type Repository interface {
	// Create returns ErrAlreadyReposted on a duplicate (user, post)
	Create(ctx context.Context, repost *Repost) (*Repost, error)

	// DeleteByUserAndPost returns ErrRepostNotFound when nothing was deleted
	DeleteByUserAndPost(ctx context.Context, userID, postID uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*Repost, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Repost, error)
	ListByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]*Repost, error)
	Exists(ctx context.Context, userID, postID uuid.UUID) (bool, error)
	Count(ctx context.Context, postID uuid.UUID) (int, error)
	PostExists(ctx context.Context, postID uuid.UUID) (bool, error)
}

// Service defines the business logic interface for reposts
type Service interface {
	Repost(ctx context.Context, actorID uuid.UUID, req CreateRepostRequest) (*Repost, error)
	Unrepost(ctx context.Context, actorID, postID uuid.UUID) error
	GetRepost(ctx context.Context, id uuid.UUID) (*Repost, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Repost, error)
	ListByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]*Repost, error)
	HasReposted(ctx context.Context, actorID, postID uuid.UUID) (bool, error)
	Count(ctx context.Context, postID uuid.UUID) (int, error)
}
