package newsfeed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"Parlor/internal/core/policy"
	"Parlor/internal/core/posts"
	"Parlor/internal/core/users"

	"github.com/google/uuid"
)

type feedService struct {
	subscriptions SubscriptionReader
	posts         PostReader
	users         UserReader
	logger        *slog.Logger
}

// NewFeedService creates the feed engine. It holds no state besides its
// collaborators and never writes through them.
func NewFeedService(subscriptions SubscriptionReader, posts PostReader, users UserReader, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &feedService{
		subscriptions: subscriptions,
		posts:         posts,
		users:         users,
		logger:        logger,
	}
}

// GetPersonalFeed returns posts by the user and everyone they follow
// Flow: outgoing edges -> author set (+ self) -> page -> count -> filter pass
func (s *feedService) GetPersonalFeed(ctx context.Context, userID uuid.UUID, filter Filter) (*Result, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	filter = normalize(filter)

	following, err := s.subscriptions.GetOutgoing(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}

	authors := authorSet(userID, following)

	page, err := s.posts.GetPage(ctx, authors, filter.Page, filter.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load personal feed page: %w", err)
	}
	total, err := s.posts.GetCount(ctx, authors)
	if err != nil {
		return nil, fmt.Errorf("failed to count personal feed: %w", err)
	}

	s.logger.DebugContext(ctx, "personal feed", "user_id", userID, "authors", len(authors), "fetched", len(page), "total", total)
	return buildResult(page, total, filter), nil
}

// GetGlobalFeed returns posts by every author
func (s *feedService) GetGlobalFeed(ctx context.Context, filter Filter) (*Result, error) {
	filter = normalize(filter)

	page, err := s.posts.GetPage(ctx, nil, filter.Page, filter.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load global feed page: %w", err)
	}
	total, err := s.posts.GetCount(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count global feed: %w", err)
	}

	return buildResult(page, total, filter), nil
}

// GetUserFeed returns the posts of one profile, gated by its privacy setting
// requesterID may be uuid.Nil for anonymous callers
func (s *feedService) GetUserFeed(ctx context.Context, requesterID, targetID uuid.UUID, filter Filter) (*Result, error) {
	filter = normalize(filter)

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := s.checkAccess(ctx, requesterID, target); err != nil {
		return nil, err
	}

	page, err := s.posts.GetPageByAuthor(ctx, targetID, filter.Page, filter.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load user feed page: %w", err)
	}
	total, err := s.posts.GetCountByAuthor(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to count user feed: %w", err)
	}

	return buildResult(page, total, filter), nil
}

// checkAccess is the privacy gate. The subscription lookup only runs when the
// profile is private and the requester is somebody else.
func (s *feedService) checkAccess(ctx context.Context, requesterID uuid.UUID, target *users.User) error {
	profile := policy.Profile{OwnerID: target.ID, Private: target.IsPrivate}
	if policy.CanViewProfile(requesterID, profile, false) {
		return nil
	}
	if requesterID == uuid.Nil {
		return ErrForbidden
	}

	subscribed, err := s.subscriptions.IsSubscribed(ctx, requesterID, target.ID)
	if err != nil {
		return fmt.Errorf("failed to check subscription: %w", err)
	}
	if !policy.CanViewProfile(requesterID, profile, subscribed) {
		return ErrForbidden
	}
	return nil
}

// authorSet is following ∪ {self}, deduplicated, self first
func authorSet(self uuid.UUID, following []uuid.UUID) []uuid.UUID {
	set := make([]uuid.UUID, 0, len(following)+1)
	seen := make(map[uuid.UUID]struct{}, len(following)+1)

	set = append(set, self)
	seen[self] = struct{}{}
	for _, id := range following {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		set = append(set, id)
	}
	return set
}

func buildResult(page []*posts.Post, total int, filter Filter) *Result {
	return &Result{
		Posts:      Apply(page, filter),
		TotalCount: total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: TotalPages(total, filter.PageSize),
	}
}
