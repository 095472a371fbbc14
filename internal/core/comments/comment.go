package comments

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a reply to a post or to another comment on the same post
// Depth is 0 for top-level comments and parent.Depth+1 for replies
type Comment struct {
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty" db:"updated_at"`
	ParentCommentID *uuid.UUID `json:"parentCommentId,omitempty" db:"parent_comment_id"`
	AuthorUsername  string     `json:"authorUsername,omitempty" db:"author_username"`
	Content         string     `json:"content" db:"content"`
	ID              uuid.UUID  `json:"id" db:"id"`
	PostID          uuid.UUID  `json:"postId" db:"post_id"`
	AuthorID        uuid.UUID  `json:"authorId" db:"author_id"`
	Depth           int        `json:"depth" db:"depth"`
}
