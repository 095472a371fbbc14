package posts

import (
	"time"

	"github.com/google/uuid"
)

// Post is a short status update authored by a user
type Post struct {
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty" db:"updated_at"`
	AuthorUsername string     `json:"authorUsername,omitempty" db:"author_username"`
	Content        string     `json:"content" db:"content"`
	MediaURLs      []string   `json:"mediaUrls" db:"media_urls"`
	Hashtags       []string   `json:"hashtags" db:"hashtags"`
	LikeCount      int        `json:"likeCount" db:"like_count"`
	RepostCount    int        `json:"repostCount" db:"repost_count"`
	CommentCount   int        `json:"commentCount" db:"comment_count"`
	ID             uuid.UUID  `json:"id" db:"id"`
	AuthorID       uuid.UUID  `json:"authorId" db:"author_id"`
}

// CreatePostRequest represents input for creating a new post
// AuthorID comes from the authenticated request, never from the body
type CreatePostRequest struct {
	Content   string    `json:"content"`
	MediaURLs []string  `json:"mediaUrls,omitempty"`
	AuthorID  uuid.UUID `json:"-"`
}

// UpdatePostRequest replaces the content and media of a post
type UpdatePostRequest struct {
	Content   string   `json:"content"`
	MediaURLs []string `json:"mediaUrls,omitempty"`
}
