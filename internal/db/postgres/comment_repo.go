package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Parlor/internal/core/comments"

	"github.com/google/uuid"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

const commentSelect = `
	SELECT c.id, c.post_id, c.author_id, u.username, c.parent_comment_id, c.depth,
		c.content, c.created_at, c.updated_at
	FROM comments c
	JOIN users u ON u.id = c.author_id`

func scanComment(row rowScanner) (*comments.Comment, error) {
	comment := &comments.Comment{}
	err := row.Scan(&comment.ID, &comment.PostID, &comment.AuthorID, &comment.AuthorUsername,
		&comment.ParentCommentID, &comment.Depth, &comment.Content,
		&comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// Create inserts a comment; depth is computed by the service
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) (*comments.Comment, error) {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}

	query := `
		INSERT INTO comments (id, post_id, author_id, parent_comment_id, depth, content)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.PostID, comment.AuthorID, comment.ParentCommentID, comment.Depth, comment.Content)
	if err != nil {
		// Post or parent removed between validation and insert
		if isForeignKeyViolation(err) {
			return nil, comments.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	return r.GetByID(ctx, comment.ID)
}

// GetByID retrieves a comment by id
func (r *postgresCommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*comments.Comment, error) {
	comment, err := scanComment(r.db.QueryRowContext(ctx, commentSelect+` WHERE c.id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return comment, nil
}

// Update replaces the content of a comment
func (r *postgresCommentRepo) Update(ctx context.Context, comment *comments.Comment) (*comments.Comment, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE comments SET content = $2, updated_at = NOW() WHERE id = $1`, comment.ID, comment.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	if err := requireAffected(result, comments.ErrCommentNotFound); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, comment.ID)
}

// Delete removes a comment; replies cascade
func (r *postgresCommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return requireAffected(result, comments.ErrCommentNotFound)
}

// ListByPost returns every comment on a post, oldest first
func (r *postgresCommentRepo) ListByPost(ctx context.Context, postID uuid.UUID) ([]*comments.Comment, error) {
	return r.list(ctx, commentSelect+` WHERE c.post_id = $1 ORDER BY c.created_at ASC, c.id ASC`, postID)
}

// ListByAuthor returns a user's comments, newest first
func (r *postgresCommentRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*comments.Comment, error) {
	return r.list(ctx, commentSelect+` WHERE c.author_id = $1 ORDER BY c.created_at DESC, c.id DESC LIMIT $2 OFFSET $3`,
		authorID, limit, offset)
}

// PostExists reports whether the post row exists
func (r *postgresCommentRepo) PostExists(ctx context.Context, postID uuid.UUID) (bool, error) {
	return rowExists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, postID)
}

func (r *postgresCommentRepo) list(ctx context.Context, query string, args ...any) ([]*comments.Comment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer closeRows(rows)

	result := []*comments.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		result = append(result, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return result, nil
}
