package bookmarks

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark is a private saved reference to a post
type Bookmark struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	PostID    uuid.UUID `json:"postId" db:"post_id"`
}
