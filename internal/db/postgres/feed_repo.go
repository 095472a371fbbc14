package postgres

import (
	"context"
	"database/sql"

	"Parlor/internal/core/newsfeed"
	"Parlor/internal/core/posts"

	"github.com/google/uuid"
)

type postgresFeedRepo struct {
	db *sql.DB
}

// NewFeedRepository creates the page/count reader used by the feed engine
func NewFeedRepository(db *sql.DB) newsfeed.PostReader {
	return &postgresFeedRepo{db: db}
}

// GetPage returns one page of posts by any of authorIDs, newest first
func (r *postgresFeedRepo) GetPage(ctx context.Context, authorIDs []uuid.UUID, page, pageSize int) ([]*posts.Post, error) {
	return listPosts(ctx, r.db, authorIDs, pageSize, pageOffset(page, pageSize))
}

// GetCount returns the size of the author-scoped set
func (r *postgresFeedRepo) GetCount(ctx context.Context, authorIDs []uuid.UUID) (int, error) {
	return countPosts(ctx, r.db, authorIDs)
}

// GetPageByAuthor returns one page of a single author's posts
func (r *postgresFeedRepo) GetPageByAuthor(ctx context.Context, authorID uuid.UUID, page, pageSize int) ([]*posts.Post, error) {
	return listPosts(ctx, r.db, []uuid.UUID{authorID}, pageSize, pageOffset(page, pageSize))
}

// GetCountByAuthor returns the number of posts by one author
func (r *postgresFeedRepo) GetCountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	return countPosts(ctx, r.db, []uuid.UUID{authorID})
}
