package likes

import (
	"context"
	"fmt"
	"log/slog"

	"Parlor/internal/events"

	"github.com/google/uuid"
)

type likeService struct {
	repo      Repository
	publisher events.Publisher
	logger    *slog.Logger
}

// NewLikeService creates a new like service
func NewLikeService(repo Repository, publisher events.Publisher, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &likeService{repo: repo, publisher: publisher, logger: logger}
}

// Like adds the actor's like; true when a new like was recorded
func (s *likeService) Like(ctx context.Context, actorID, postID uuid.UUID) (bool, error) {
	if actorID == uuid.Nil {
		return false, ErrNotAuthorized
	}
	if err := s.requirePost(ctx, postID); err != nil {
		return false, err
	}

	added, err := s.repo.Add(ctx, postID, actorID)
	if err != nil {
		return false, err
	}
	if added {
		events.PublishBestEffort(ctx, s.publisher, s.logger, events.SubjectLikeAdded, map[string]any{
			"postId": postID,
			"userId": actorID,
		})
	}
	return added, nil
}

// Unlike removes the actor's like; true when a like was removed
func (s *likeService) Unlike(ctx context.Context, actorID, postID uuid.UUID) (bool, error) {
	if actorID == uuid.Nil {
		return false, ErrNotAuthorized
	}
	return s.repo.Remove(ctx, postID, actorID)
}

// Count returns the number of likes on a post
func (s *likeService) Count(ctx context.Context, postID uuid.UUID) (int, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return 0, err
	}
	return s.repo.Count(ctx, postID)
}

// IsLiked reports whether the actor liked the post
func (s *likeService) IsLiked(ctx context.Context, actorID, postID uuid.UUID) (bool, error) {
	if actorID == uuid.Nil {
		return false, nil
	}
	return s.repo.Exists(ctx, postID, actorID)
}

// ListForPost returns the likes of a post, newest first
func (s *likeService) ListForPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]*Like, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByPost(ctx, postID, limit, offset)
}

func (s *likeService) requirePost(ctx context.Context, postID uuid.UUID) error {
	exists, err := s.repo.PostExists(ctx, postID)
	if err != nil {
		return fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return ErrPostNotFound
	}
	return nil
}
