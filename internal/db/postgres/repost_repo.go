package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Parlor/internal/core/reposts"

	"github.com/google/uuid"
)

type postgresRepostRepo struct {
	db *sql.DB
}

// NewRepostRepository creates a new PostgreSQL repost repository
func NewRepostRepository(db *sql.DB) reposts.Repository {
	return &postgresRepostRepo{db: db}
}

const repostSelect = `
	SELECT r.id, r.user_id, u.username, r.original_post_id, r.comment, r.created_at
	FROM reposts r
	JOIN users u ON u.id = r.user_id`

// recountReposts recomputes the counter from the rows
const recountReposts = `
	UPDATE posts
	SET repost_count = (SELECT COUNT(*) FROM reposts WHERE original_post_id = $1)
	WHERE id = $1`

func scanRepost(row rowScanner) (*reposts.Repost, error) {
	repost := &reposts.Repost{}
	if err := row.Scan(&repost.ID, &repost.UserID, &repost.Username, &repost.OriginalPostID,
		&repost.Comment, &repost.CreatedAt); err != nil {
		return nil, err
	}
	return repost, nil
}

// Create inserts a repost and refreshes posts.repost_count
func (r *postgresRepostRepo) Create(ctx context.Context, repost *reposts.Repost) (*reposts.Repost, error) {
	if repost.ID == uuid.Nil {
		repost.ID = uuid.New()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	_, err = tx.ExecContext(ctx, `
		INSERT INTO reposts (id, user_id, original_post_id, comment)
		VALUES ($1, $2, $3, $4)`,
		repost.ID, repost.UserID, repost.OriginalPostID, repost.Comment)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "reposts_user_post_key") {
			return nil, reposts.ErrAlreadyReposted
		}
		if isForeignKeyViolation(err) {
			return nil, reposts.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to insert repost: %w", err)
	}

	if _, err := tx.ExecContext(ctx, recountReposts, repost.OriginalPostID); err != nil {
		return nil, fmt.Errorf("failed to update repost count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.GetByID(ctx, repost.ID)
}

// DeleteByUserAndPost removes a repost and refreshes posts.repost_count
func (r *postgresRepostRepo) DeleteByUserAndPost(ctx context.Context, userID, postID uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	result, err := tx.ExecContext(ctx,
		`DELETE FROM reposts WHERE user_id = $1 AND original_post_id = $2`, userID, postID)
	if err != nil {
		return fmt.Errorf("failed to delete repost: %w", err)
	}
	if err := requireAffected(result, reposts.ErrRepostNotFound); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, recountReposts, postID); err != nil {
		return fmt.Errorf("failed to update repost count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a repost by id
func (r *postgresRepostRepo) GetByID(ctx context.Context, id uuid.UUID) (*reposts.Repost, error) {
	repost, err := scanRepost(r.db.QueryRowContext(ctx, repostSelect+` WHERE r.id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, reposts.ErrRepostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get repost: %w", err)
	}
	return repost, nil
}

// ListByUser returns a user's reposts, newest first
func (r *postgresRepostRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*reposts.Repost, error) {
	return r.list(ctx, `r.user_id = $1`, userID, limit, offset)
}

// ListByPost returns the reposts of a post, newest first
func (r *postgresRepostRepo) ListByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]*reposts.Repost, error) {
	return r.list(ctx, `r.original_post_id = $1`, postID, limit, offset)
}

func (r *postgresRepostRepo) list(ctx context.Context, where string, id uuid.UUID, limit, offset int) ([]*reposts.Repost, error) {
	query := repostSelect + ` WHERE ` + where + ` ORDER BY r.created_at DESC, r.id DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, id, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reposts: %w", err)
	}
	defer closeRows(rows)

	result := []*reposts.Repost{}
	for rows.Next() {
		repost, err := scanRepost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan repost: %w", err)
		}
		result = append(result, repost)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reposts: %w", err)
	}

	return result, nil
}

// Exists reports whether the user reposted the post
func (r *postgresRepostRepo) Exists(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	return rowExists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM reposts WHERE user_id = $1 AND original_post_id = $2)`, userID, postID)
}

// Count returns the number of reposts of a post
func (r *postgresRepostRepo) Count(ctx context.Context, postID uuid.UUID) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reposts WHERE original_post_id = $1`, postID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count reposts: %w", err)
	}
	return count, nil
}

// PostExists reports whether the post row exists
func (r *postgresRepostRepo) PostExists(ctx context.Context, postID uuid.UUID) (bool, error) {
	return rowExists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, postID)
}
