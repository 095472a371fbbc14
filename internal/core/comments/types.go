package comments

import "github.com/google/uuid"

// CreateCommentRequest contains parameters for creating a comment
// AuthorID is taken from the authenticated request
type CreateCommentRequest struct {
	ParentCommentID *uuid.UUID `json:"parentCommentId,omitempty"`
	Content         string     `json:"content"`
	PostID          uuid.UUID  `json:"postId"`
	AuthorID        uuid.UUID  `json:"-"`
}

// UpdateCommentRequest contains parameters for updating a comment
type UpdateCommentRequest struct {
	Content string `json:"content"`
}
