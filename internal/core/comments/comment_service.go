package comments

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"Parlor/internal/core/policy"
	"Parlor/internal/events"

	"github.com/google/uuid"
	"github.com/rivo/uniseg"
)

const (
	// MaxNestingDepth is the deepest allowed reply; top-level comments have depth 0
	MaxNestingDepth = 5

	// MaxContentLength is measured in grapheme clusters
	MaxContentLength = 500

	maxListLimit = 100
)

type commentService struct {
	repo      Repository
	publisher events.Publisher
	logger    *slog.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(repo Repository, publisher events.Publisher, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &commentService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateComment creates a top-level comment or a reply
// Flow: validate content -> check post -> resolve parent and depth -> persist
func (s *commentService) CreateComment(ctx context.Context, req CreateCommentRequest) (*Comment, error) {
	if req.AuthorID == uuid.Nil {
		return nil, ErrNotAuthorized
	}

	content := strings.TrimSpace(req.Content)
	if err := validateContent(content); err != nil {
		return nil, err
	}

	exists, err := s.repo.PostExists(ctx, req.PostID)
	if err != nil {
		return nil, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	depth := 0
	if req.ParentCommentID != nil {
		parent, err := s.repo.GetByID(ctx, *req.ParentCommentID)
		if err != nil {
			if IsNotFound(err) {
				return nil, ErrParentNotFound
			}
			return nil, fmt.Errorf("failed to load parent comment: %w", err)
		}
		if parent.PostID != req.PostID {
			return nil, ErrParentMismatch
		}
		depth = parent.Depth + 1
		if depth > MaxNestingDepth {
			return nil, ErrMaxDepthExceeded
		}
	}

	comment := &Comment{
		PostID:          req.PostID,
		AuthorID:        req.AuthorID,
		ParentCommentID: req.ParentCommentID,
		Content:         content,
		Depth:           depth,
	}

	created, err := s.repo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	s.logger.Info("comment created", "comment_id", created.ID, "post_id", created.PostID, "depth", created.Depth)
	events.PublishBestEffort(ctx, s.publisher, s.logger, events.SubjectCommentCreated, map[string]any{
		"commentId": created.ID,
		"postId":    created.PostID,
		"authorId":  created.AuthorID,
	})

	return created, nil
}

// GetComment retrieves one comment
func (s *commentService) GetComment(ctx context.Context, id uuid.UUID) (*Comment, error) {
	return s.repo.GetByID(ctx, id)
}

// ListPostComments returns every comment on a post as a flat list, oldest first
func (s *commentService) ListPostComments(ctx context.Context, postID uuid.UUID) ([]*Comment, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}
	return s.repo.ListByPost(ctx, postID)
}

// GetThread returns the comments of a post as a nested tree
func (s *commentService) GetThread(ctx context.Context, postID uuid.UUID) (*ThreadResponse, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	flat, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &ThreadResponse{
		Comments: BuildThread(flat),
		Total:    len(flat),
	}, nil
}

// ListAuthorComments returns a user's comments, newest first
func (s *commentService) ListAuthorComments(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*Comment, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByAuthor(ctx, authorID, limit, offset)
}

// UpdateComment replaces the content of a comment owned by actorID
func (s *commentService) UpdateComment(ctx context.Context, actorID, id uuid.UUID, req UpdateCommentRequest) (*Comment, error) {
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanModify(actorID, comment.AuthorID) {
		return nil, ErrNotAuthorized
	}

	content := strings.TrimSpace(req.Content)
	if err := validateContent(content); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment.Content = content
	comment.UpdatedAt = &now

	return s.repo.Update(ctx, comment)
}

// DeleteComment removes a comment owned by actorID together with its replies
func (s *commentService) DeleteComment(ctx context.Context, actorID, id uuid.UUID) error {
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanModify(actorID, comment.AuthorID) {
		return ErrNotAuthorized
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("comment deleted", "comment_id", id, "post_id", comment.PostID)
	return nil
}

func (s *commentService) requirePost(ctx context.Context, postID uuid.UUID) error {
	exists, err := s.repo.PostExists(ctx, postID)
	if err != nil {
		return fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return ErrPostNotFound
	}
	return nil
}

// BuildThread arranges a flat, oldest-first comment list into a tree.
// Sibling order follows input order. A comment whose parent is not in the
// list is treated as top level.
func BuildThread(flat []*Comment) []*ThreadViewComment {
	nodes := make(map[uuid.UUID]*ThreadViewComment, len(flat))
	for _, c := range flat {
		nodes[c.ID] = &ThreadViewComment{Comment: c, Replies: []*ThreadViewComment{}}
	}

	roots := make([]*ThreadViewComment, 0)
	for _, c := range flat {
		node := nodes[c.ID]
		if c.ParentCommentID != nil {
			if parent, ok := nodes[*c.ParentCommentID]; ok {
				parent.Replies = append(parent.Replies, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	return roots
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
