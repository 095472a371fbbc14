package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Parlor/internal/core/bookmarks"

	"github.com/google/uuid"
)

type postgresBookmarkRepo struct {
	db *sql.DB
}

// NewBookmarkRepository creates a new PostgreSQL bookmark repository
func NewBookmarkRepository(db *sql.DB) bookmarks.Repository {
	return &postgresBookmarkRepo{db: db}
}

const bookmarkColumns = `id, user_id, post_id, created_at`

func scanBookmark(row rowScanner) (*bookmarks.Bookmark, error) {
	bookmark := &bookmarks.Bookmark{}
	if err := row.Scan(&bookmark.ID, &bookmark.UserID, &bookmark.PostID, &bookmark.CreatedAt); err != nil {
		return nil, err
	}
	return bookmark, nil
}

// Create inserts a bookmark
func (r *postgresBookmarkRepo) Create(ctx context.Context, bookmark *bookmarks.Bookmark) (*bookmarks.Bookmark, error) {
	if bookmark.ID == uuid.Nil {
		bookmark.ID = uuid.New()
	}

	created, err := scanBookmark(r.db.QueryRowContext(ctx, `
		INSERT INTO bookmarks (id, user_id, post_id)
		VALUES ($1, $2, $3)
		RETURNING `+bookmarkColumns,
		bookmark.ID, bookmark.UserID, bookmark.PostID))
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "bookmarks_user_post_key") {
			return nil, bookmarks.ErrAlreadyBookmarked
		}
		if isForeignKeyViolation(err) {
			return nil, bookmarks.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to create bookmark: %w", err)
	}

	return created, nil
}

// DeleteByUserAndPost removes the user's bookmark of a post
func (r *postgresBookmarkRepo) DeleteByUserAndPost(ctx context.Context, userID, postID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM bookmarks WHERE user_id = $1 AND post_id = $2`, userID, postID)
	if err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	return requireAffected(result, bookmarks.ErrBookmarkNotFound)
}

// GetByID retrieves a bookmark by id
func (r *postgresBookmarkRepo) GetByID(ctx context.Context, id uuid.UUID) (*bookmarks.Bookmark, error) {
	bookmark, err := scanBookmark(r.db.QueryRowContext(ctx,
		`SELECT `+bookmarkColumns+` FROM bookmarks WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, bookmarks.ErrBookmarkNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}
	return bookmark, nil
}

// ListByUser returns a user's bookmarks, newest first
func (r *postgresBookmarkRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*bookmarks.Bookmark, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+bookmarkColumns+` FROM bookmarks
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	defer closeRows(rows)

	result := []*bookmarks.Bookmark{}
	for rows.Next() {
		bookmark, err := scanBookmark(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}
		result = append(result, bookmark)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookmarks: %w", err)
	}

	return result, nil
}

// Exists reports whether the user bookmarked the post
func (r *postgresBookmarkRepo) Exists(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	return rowExists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM bookmarks WHERE user_id = $1 AND post_id = $2)`, userID, postID)
}

// PostExists reports whether the post row exists
func (r *postgresBookmarkRepo) PostExists(ctx context.Context, postID uuid.UUID) (bool, error) {
	return rowExists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, postID)
}
