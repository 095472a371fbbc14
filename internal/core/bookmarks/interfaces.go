package bookmarks

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the data access interface for bookmarks
type Repository interface {
	// Create returns ErrAlreadyBookmarked on a duplicate (user, post)
	Create(ctx context.Context, bookmark *Bookmark) (*Bookmark, error)

	// DeleteByUserAndPost returns ErrBookmarkNotFound when nothing was deleted
	DeleteByUserAndPost(ctx context.Context, userID, postID uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*Bookmark, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Bookmark, error)
	Exists(ctx context.Context, userID, postID uuid.UUID) (bool, error)
	PostExists(ctx context.Context, postID uuid.UUID) (bool, error)
}

// Service defines the business logic interface for bookmarks
// Bookmarks are only ever visible to their owner
type Service interface {
	Add(ctx context.Context, actorID, postID uuid.UUID) (*Bookmark, error)
	Remove(ctx context.Context, actorID, postID uuid.UUID) error
	Get(ctx context.Context, actorID, id uuid.UUID) (*Bookmark, error)
	List(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]*Bookmark, error)
	IsBookmarked(ctx context.Context, actorID, postID uuid.UUID) (bool, error)
}
