package posts

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"Parlor/internal/core/policy"
	"Parlor/internal/events"

	"github.com/google/uuid"
	"github.com/rivo/uniseg"
)

const (
	// MaxContentLength is measured in grapheme clusters
	MaxContentLength = 280
	// MaxMediaURLs caps attachments per post
	MaxMediaURLs = 10
	// MaxListLimit caps list page size
	MaxListLimit = 100
)

type postService struct {
	repo      Repository
	publisher events.Publisher
	logger    *slog.Logger
}

// NewPostService creates a new post service
// publisher may be nil when events are disabled
func NewPostService(repo Repository, publisher events.Publisher, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &postService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// CreatePost creates a new post for the authenticated author
// Flow: validate -> check author -> extract hashtags -> persist -> publish
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	if req.AuthorID == uuid.Nil {
		return nil, NewValidationError("authorId", "author is required")
	}

	content := strings.TrimSpace(req.Content)
	if err := validateContent(content); err != nil {
		return nil, err
	}
	media, err := normalizeMediaURLs(req.MediaURLs)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.AuthorExists(ctx, req.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check author: %w", err)
	}
	if !exists {
		return nil, ErrAuthorNotFound
	}

	post := &Post{
		AuthorID:  req.AuthorID,
		Content:   content,
		MediaURLs: media,
		Hashtags:  ExtractHashtags(content),
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	s.logger.Info("post created", "post_id", created.ID, "author_id", created.AuthorID, "hashtags", len(created.Hashtags))
	events.PublishBestEffort(ctx, s.publisher, s.logger, events.SubjectPostCreated, map[string]any{
		"postId":   created.ID,
		"authorId": created.AuthorID,
		"hashtags": created.Hashtags,
	})

	return created, nil
}

// GetPost retrieves a single post
func (s *postService) GetPost(ctx context.Context, id uuid.UUID) (*Post, error) {
	if id == uuid.Nil {
		return nil, NewValidationError("id", "post id is required")
	}
	return s.repo.GetByID(ctx, id)
}

// ListPosts returns the newest posts across all authors
func (s *postService) ListPosts(ctx context.Context, limit, offset int) ([]*Post, error) {
	limit, offset = clampPage(limit, offset)
	return s.repo.List(ctx, nil, limit, offset)
}

// ListAuthorPosts returns the newest posts of one author
func (s *postService) ListAuthorPosts(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*Post, error) {
	if authorID == uuid.Nil {
		return nil, NewValidationError("authorId", "author id is required")
	}
	limit, offset = clampPage(limit, offset)
	return s.repo.List(ctx, []uuid.UUID{authorID}, limit, offset)
}

// UpdatePost replaces the content of a post owned by actorID
func (s *postService) UpdatePost(ctx context.Context, actorID, id uuid.UUID, req UpdatePostRequest) (*Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanModify(actorID, post.AuthorID) {
		return nil, ErrNotAuthorized
	}

	content := strings.TrimSpace(req.Content)
	if err := validateContent(content); err != nil {
		return nil, err
	}
	media, err := normalizeMediaURLs(req.MediaURLs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post.Content = content
	post.MediaURLs = media
	post.Hashtags = ExtractHashtags(content)
	post.UpdatedAt = &now

	return s.repo.Update(ctx, post)
}

// DeletePost removes a post owned by actorID
func (s *postService) DeletePost(ctx context.Context, actorID, id uuid.UUID) error {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanModify(actorID, post.AuthorID) {
		return ErrNotAuthorized
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("post deleted", "post_id", id, "author_id", actorID)
	events.PublishBestEffort(ctx, s.publisher, s.logger, events.SubjectPostDeleted, map[string]any{
		"postId":   id,
		"authorId": actorID,
	})
	return nil
}

func validateContent(content string) error {
	if content == "" {
		return ErrContentEmpty
	}
	if uniseg.GraphemeClusterCount(content) > MaxContentLength {
		return ErrContentTooLong
	}
	return nil
}

// normalizeMediaURLs trims entries, drops blanks and requires absolute http(s) URLs
func normalizeMediaURLs(raw []string) ([]string, error) {
	media := make([]string, 0, len(raw))
	for _, u := range raw {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		parsed, err := url.Parse(u)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			return nil, NewValidationError("mediaUrls", fmt.Sprintf("invalid media URL: %q", u))
		}
		media = append(media, u)
	}
	if len(media) > MaxMediaURLs {
		return nil, NewValidationError("mediaUrls", fmt.Sprintf("at most %d media URLs allowed", MaxMediaURLs))
	}
	return media, nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
