package posts

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the business logic interface for posts
type Service interface {
	// CreatePost validates content, extracts hashtags and stores the post
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)

	GetPost(ctx context.Context, id uuid.UUID) (*Post, error)
	ListPosts(ctx context.Context, limit, offset int) ([]*Post, error)
	ListAuthorPosts(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*Post, error)

	// UpdatePost replaces content and media; only the author may update
	UpdatePost(ctx context.Context, actorID, id uuid.UUID, req UpdatePostRequest) (*Post, error)

	// DeletePost removes the post; only the author may delete
	DeletePost(ctx context.Context, actorID, id uuid.UUID) error
}

// Repository defines the data access interface for posts
// Listing methods return newest first (created_at DESC, id DESC)
type Repository interface {
	Create(ctx context.Context, post *Post) (*Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)
	Update(ctx context.Context, post *Post) (*Post, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns posts by any author in authorIDs; nil authorIDs means all posts
	List(ctx context.Context, authorIDs []uuid.UUID, limit, offset int) ([]*Post, error)

	// Count returns the number of posts by any author in authorIDs; nil means all posts
	Count(ctx context.Context, authorIDs []uuid.UUID) (int, error)

	// AuthorExists reports whether a user row exists for the id
	AuthorExists(ctx context.Context, authorID uuid.UUID) (bool, error)
}
