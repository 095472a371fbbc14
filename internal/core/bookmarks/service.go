package bookmarks

import (
	"context"
	"fmt"

	"Parlor/internal/core/policy"

	"github.com/google/uuid"
)

type bookmarkService struct {
	repo Repository
}

// NewBookmarkService creates a new bookmark service
func NewBookmarkService(repo Repository) Service {
	return &bookmarkService{repo: repo}
}

func (s *bookmarkService) Add(ctx context.Context, actorID, postID uuid.UUID) (*Bookmark, error) {
	if actorID == uuid.Nil {
		return nil, ErrNotAuthorized
	}
	exists, err := s.repo.PostExists(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return nil, ErrPostNotFound
	}
	return s.repo.Create(ctx, &Bookmark{UserID: actorID, PostID: postID})
}

func (s *bookmarkService) Remove(ctx context.Context, actorID, postID uuid.UUID) error {
	if actorID == uuid.Nil {
		return ErrNotAuthorized
	}
	return s.repo.DeleteByUserAndPost(ctx, actorID, postID)
}

// Get returns the bookmark only to its owner; others see ErrBookmarkNotFound
func (s *bookmarkService) Get(ctx context.Context, actorID, id uuid.UUID) (*Bookmark, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanModify(actorID, b.UserID) {
		return nil, ErrBookmarkNotFound
	}
	return b, nil
}

func (s *bookmarkService) List(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]*Bookmark, error) {
	if actorID == uuid.Nil {
		return nil, ErrNotAuthorized
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByUser(ctx, actorID, limit, offset)
}

func (s *bookmarkService) IsBookmarked(ctx context.Context, actorID, postID uuid.UUID) (bool, error) {
	if actorID == uuid.Nil {
		return false, nil
	}
	return s.repo.Exists(ctx, actorID, postID)
}
