package likes

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the data access interface for likes
// Add and Remove keep posts.like_count in sync in the same transaction
type Repository interface {
	// Add returns false when the like already existed
	Add(ctx context.Context, postID, userID uuid.UUID) (bool, error)

	// Remove returns false when there was nothing to remove
	Remove(ctx context.Context, postID, userID uuid.UUID) (bool, error)

	Count(ctx context.Context, postID uuid.UUID) (int, error)
	Exists(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	ListByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]*Like, error)
	PostExists(ctx context.Context, postID uuid.UUID) (bool, error)
}

// Service defines the business logic interface for likes
type Service interface {
	Like(ctx context.Context, actorID, postID uuid.UUID) (bool, error)
	Unlike(ctx context.Context, actorID, postID uuid.UUID) (bool, error)
	Count(ctx context.Context, postID uuid.UUID) (int, error)
	IsLiked(ctx context.Context, actorID, postID uuid.UUID) (bool, error)
	ListForPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]*Like, error)
}
