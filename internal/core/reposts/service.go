package reposts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"Parlor/internal/events"

	"github.com/google/uuid"
	"github.com/rivo/uniseg"
)

// MaxCommentLength is measured in grapheme clusters
const MaxCommentLength = 280

type repostService struct {
	repo      Repository
	publisher events.Publisher
	logger    *slog.Logger
}

// NewRepostService creates a new repost service
func NewRepostService(repo Repository, publisher events.Publisher, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &repostService{repo: repo, publisher: publisher, logger: logger}
}

// Repost shares the original post on behalf of actorID
func (s *repostService) Repost(ctx context.Context, actorID uuid.UUID, req CreateRepostRequest) (*Repost, error) {
	if actorID == uuid.Nil {
		return nil, ErrNotAuthorized
	}

	var comment *string
	if req.Comment != nil {
		trimmed := strings.TrimSpace(*req.Comment)
		if uniseg.GraphemeClusterCount(trimmed) > MaxCommentLength {
			return nil, &ValidationError{Field: "comment", Message: fmt.Sprintf("comment must be at most %d characters", MaxCommentLength)}
		}
		if trimmed != "" {
			comment = &trimmed
		}
	}

	exists, err := s.repo.PostExists(ctx, req.OriginalPostID)
	if err != nil {
		return nil, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	repost, err := s.repo.Create(ctx, &Repost{
		UserID:         actorID,
		OriginalPostID: req.OriginalPostID,
		Comment:        comment,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("post reposted", "repost_id", repost.ID, "post_id", repost.OriginalPostID, "user_id", actorID)
	events.PublishBestEffort(ctx, s.publisher, s.logger, events.SubjectRepostCreated, repost)
	return repost, nil
}

// Unrepost removes the actor's repost of postID
func (s *repostService) Unrepost(ctx context.Context, actorID, postID uuid.UUID) error {
	if actorID == uuid.Nil {
		return ErrNotAuthorized
	}
	return s.repo.DeleteByUserAndPost(ctx, actorID, postID)
}

// GetRepost retrieves a repost by id
func (s *repostService) GetRepost(ctx context.Context, id uuid.UUID) (*Repost, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByUser returns a user's reposts, newest first
func (s *repostService) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Repost, error) {
	limit, offset = clamp(limit, offset)
	return s.repo.ListByUser(ctx, userID, limit, offset)
}

// ListByPost returns the reposts of a post, newest first
func (s *repostService) ListByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]*Repost, error) {
	limit, offset = clamp(limit, offset)
	return s.repo.ListByPost(ctx, postID, limit, offset)
}

// HasReposted reports whether the actor reposted the post
func (s *repostService) HasReposted(ctx context.Context, actorID, postID uuid.UUID) (bool, error) {
	if actorID == uuid.Nil {
		return false, nil
	}
	return s.repo.Exists(ctx, actorID, postID)
}

// Count returns the number of reposts of a post
func (s *repostService) Count(ctx context.Context, postID uuid.UUID) (int, error) {
	return s.repo.Count(ctx, postID)
}

func clamp(limit, offset int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
