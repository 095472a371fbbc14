package comments

// ThreadViewComment represents a comment with its nested replies
// Replies are ordered oldest first
type ThreadViewComment struct {
	Comment *Comment             `json:"comment"`
	Replies []*ThreadViewComment `json:"replies"`
}

// ThreadResponse is the full comment tree of a post
type ThreadResponse struct {
	Comments []*ThreadViewComment `json:"comments"`
	Total    int                  `json:"total"`
}
