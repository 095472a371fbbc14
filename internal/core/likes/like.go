package likes

import (
	"time"

	"github.com/google/uuid"
)

// Like records that a user liked a post; one per (post, user)
type Like struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Username  string    `json:"username,omitempty" db:"username"`
	ID        uuid.UUID `json:"id" db:"id"`
	PostID    uuid.UUID `json:"postId" db:"post_id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
}
