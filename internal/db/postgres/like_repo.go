package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Parlor/internal/core/likes"

	"github.com/google/uuid"
)

type postgresLikeRepo struct {
	db *sql.DB
}

// NewLikeRepository creates a new PostgreSQL like repository
func NewLikeRepository(db *sql.DB) likes.Repository {
	return &postgresLikeRepo{db: db}
}

// Add inserts a like and bumps posts.like_count in one transaction
// Returns false when the like already existed
func (r *postgresLikeRepo) Add(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	result, err := tx.ExecContext(ctx, `
		INSERT INTO likes (id, post_id, user_id)
		VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT likes_post_user_key DO NOTHING`,
		uuid.New(), postID, userID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, likes.ErrPostNotFound
		}
		return false, fmt.Errorf("failed to insert like: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if inserted == 0 {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE posts SET like_count = like_count + 1 WHERE id = $1`, postID); err != nil {
		return false, fmt.Errorf("failed to update like count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return true, nil
}

// Remove deletes a like and decrements posts.like_count in one transaction
func (r *postgresLikeRepo) Remove(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	result, err := tx.ExecContext(ctx, `DELETE FROM likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete like: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if deleted == 0 {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE posts SET like_count = GREATEST(like_count - 1, 0) WHERE id = $1`, postID); err != nil {
		return false, fmt.Errorf("failed to update like count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return true, nil
}

// Count returns the stored like counter of a post
func (r *postgresLikeRepo) Count(ctx context.Context, postID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT like_count FROM posts WHERE id = $1`, postID).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, likes.ErrPostNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

// Exists reports whether the user liked the post
func (r *postgresLikeRepo) Exists(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	return rowExists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM likes WHERE post_id = $1 AND user_id = $2)`, postID, userID)
}

// ListByPost returns the likes of a post, newest first
func (r *postgresLikeRepo) ListByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]*likes.Like, error) {
	query := `
		SELECT l.id, l.post_id, l.user_id, u.username, l.created_at
		FROM likes l
		JOIN users u ON u.id = l.user_id
		WHERE l.post_id = $1
		ORDER BY l.created_at DESC, l.id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, postID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}
	defer closeRows(rows)

	result := []*likes.Like{}
	for rows.Next() {
		like := &likes.Like{}
		if err := rows.Scan(&like.ID, &like.PostID, &like.UserID, &like.Username, &like.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan like: %w", err)
		}
		result = append(result, like)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating likes: %w", err)
	}

	return result, nil
}

// PostExists reports whether the post row exists
func (r *postgresLikeRepo) PostExists(ctx context.Context, postID uuid.UUID) (bool, error) {
	return rowExists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, postID)
}
