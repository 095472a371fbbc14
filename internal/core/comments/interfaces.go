package comments

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the data access interface for comments
type Repository interface {
	Create(ctx context.Context, comment *Comment) (*Comment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Comment, error)
	Update(ctx context.Context, comment *Comment) (*Comment, error)

	// Delete removes the comment and, by cascade, all of its replies
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByPost returns every comment on a post, oldest first
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*Comment, error)

	// ListByAuthor returns a user's comments, newest first
	ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*Comment, error)

	// PostExists reports whether the post row exists
	PostExists(ctx context.Context, postID uuid.UUID) (bool, error)
}

// Service defines the business logic interface for comments
type Service interface {
	CreateComment(ctx context.Context, req CreateCommentRequest) (*Comment, error)
	GetComment(ctx context.Context, id uuid.UUID) (*Comment, error)
	ListPostComments(ctx context.Context, postID uuid.UUID) ([]*Comment, error)
	GetThread(ctx context.Context, postID uuid.UUID) (*ThreadResponse, error)
	ListAuthorComments(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*Comment, error)
	UpdateComment(ctx context.Context, actorID, id uuid.UUID, req UpdateCommentRequest) (*Comment, error)
	DeleteComment(ctx context.Context, actorID, id uuid.UUID) error
}
