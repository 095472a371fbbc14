package newsfeed

import (
	"context"
	"errors"
	"time"

	"Parlor/internal/core/posts"
	"Parlor/internal/core/users"

	"github.com/google/uuid"
)

const (
	// DefaultPageSize is used when a filter has no usable page size
	DefaultPageSize = 20
	// MaxPageSize caps a single feed page
	MaxPageSize = 100
)

// Filter describes a feed request
// IncludeComments is accepted for API compatibility and has no effect on results
type Filter struct {
	FromDate        *time.Time `json:"fromDate,omitempty"`
	ToDate          *time.Time `json:"toDate,omitempty"`
	SearchQuery     string     `json:"searchQuery,omitempty"`
	Hashtag         string     `json:"hashtag,omitempty"`
	Page            int        `json:"page"`
	PageSize        int        `json:"pageSize"`
	IncludeReposts  bool       `json:"includeReposts"`
	IncludeComments bool       `json:"includeComments"`
}

// DefaultFilter returns the first page with both include flags on
func DefaultFilter() Filter {
	return Filter{
		Page:            1,
		PageSize:        DefaultPageSize,
		IncludeReposts:  true,
		IncludeComments: true,
	}
}

// Result is one page of a feed.
// TotalCount and TotalPages describe the author-scoped set before the filter
// pass, so Posts may hold fewer than PageSize entries on any page.
type Result struct {
	Posts      []*posts.Post `json:"posts"`
	TotalCount int           `json:"totalCount"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}

// SubscriptionReader exposes the follow edges the engine needs
// Neither method distinguishes pending from approved edges
type SubscriptionReader interface {
	GetOutgoing(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	IsSubscribed(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
}

// PostReader pages posts newest first. A nil authorIDs slice means every author.
type PostReader interface {
	GetPage(ctx context.Context, authorIDs []uuid.UUID, page, pageSize int) ([]*posts.Post, error)
	GetCount(ctx context.Context, authorIDs []uuid.UUID) (int, error)
	GetPageByAuthor(ctx context.Context, authorID uuid.UUID, page, pageSize int) ([]*posts.Post, error)
	GetCountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
}

// UserReader loads the target of a user feed; returns users.ErrUserNotFound when absent
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*users.User, error)
}

// Service defines the feed business logic interface
type Service interface {
	GetPersonalFeed(ctx context.Context, userID uuid.UUID, filter Filter) (*Result, error)
	GetGlobalFeed(ctx context.Context, filter Filter) (*Result, error)
	GetUserFeed(ctx context.Context, requesterID, targetID uuid.UUID, filter Filter) (*Result, error)
}

// Errors
var (
	ErrTargetNotFound = errors.New("user not found")
	ErrForbidden      = errors.New("this account is private")
	ErrUnauthorized   = errors.New("unauthorized")
)
