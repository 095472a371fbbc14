package reposts

import (
	"time"

	"github.com/google/uuid"
)

// Repost shares another post, optionally with a comment
type Repost struct {
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	Comment        *string   `json:"comment,omitempty" db:"comment"`
	Username       string    `json:"username,omitempty" db:"username"`
	ID             uuid.UUID `json:"id" db:"id"`
	UserID         uuid.UUID `json:"userId" db:"user_id"`
	OriginalPostID uuid.UUID `json:"originalPostId" db:"original_post_id"`
}

// CreateRepostRequest is the body of POST /api/reposts
type CreateRepostRequest struct {
	Comment        *string   `json:"comment,omitempty"`
	OriginalPostID uuid.UUID `json:"originalPostId"`
}
