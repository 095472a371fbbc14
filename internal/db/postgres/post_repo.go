package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Parlor/internal/core/posts"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// postSelect joins the author username and derives the comment count
const postSelect = `
	SELECT p.id, p.author_id, u.username, p.content, p.media_urls, p.hashtags,
		p.like_count, p.repost_count,
		(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id),
		p.created_at, p.updated_at
	FROM posts p
	JOIN users u ON u.id = p.author_id`

func scanPost(row rowScanner) (*posts.Post, error) {
	post := &posts.Post{}
	err := row.Scan(&post.ID, &post.AuthorID, &post.AuthorUsername, &post.Content,
		pq.Array(&post.MediaURLs), pq.Array(&post.Hashtags),
		&post.LikeCount, &post.RepostCount, &post.CommentCount,
		&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if post.MediaURLs == nil {
		post.MediaURLs = []string{}
	}
	if post.Hashtags == nil {
		post.Hashtags = []string{}
	}
	return post, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// authorClause scopes a post query; nil authorIDs leaves it unscoped
func authorClause(authorIDs []uuid.UUID, param int) (string, []any) {
	if authorIDs == nil {
		return "", nil
	}
	return fmt.Sprintf(" WHERE p.author_id = ANY($%d::uuid[])", param), []any{pq.Array(uuidStrings(authorIDs))}
}

// Create inserts a new post
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}

	query := `
		INSERT INTO posts (id, author_id, content, media_urls, hashtags)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.AuthorID, post.Content, pq.Array(nonNil(post.MediaURLs)), pq.Array(nonNil(post.Hashtags)))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, posts.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return r.GetByID(ctx, post.ID)
}

// GetByID retrieves a post with its author username and counters
func (r *postgresPostRepo) GetByID(ctx context.Context, id uuid.UUID) (*posts.Post, error) {
	post, err := scanPost(r.db.QueryRowContext(ctx, postSelect+` WHERE p.id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// Update replaces content, media and hashtags
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		UPDATE posts
		SET content = $2, media_urls = $3, hashtags = $4, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		post.ID, post.Content, pq.Array(nonNil(post.MediaURLs)), pq.Array(nonNil(post.Hashtags)))
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	if err := requireAffected(result, posts.ErrPostNotFound); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, post.ID)
}

// Delete removes a post; comments, likes, reposts and bookmarks cascade
func (r *postgresPostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return requireAffected(result, posts.ErrPostNotFound)
}

// List returns posts newest first
func (r *postgresPostRepo) List(ctx context.Context, authorIDs []uuid.UUID, limit, offset int) ([]*posts.Post, error) {
	return listPosts(ctx, r.db, authorIDs, limit, offset)
}

// Count returns the number of posts in scope
func (r *postgresPostRepo) Count(ctx context.Context, authorIDs []uuid.UUID) (int, error) {
	return countPosts(ctx, r.db, authorIDs)
}

// AuthorExists reports whether the user row exists
func (r *postgresPostRepo) AuthorExists(ctx context.Context, authorID uuid.UUID) (bool, error) {
	return rowExists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, authorID)
}

func listPosts(ctx context.Context, db *sql.DB, authorIDs []uuid.UUID, limit, offset int) ([]*posts.Post, error) {
	where, args := authorClause(authorIDs, 3)
	query := postSelect + where + ` ORDER BY p.created_at DESC, p.id DESC LIMIT $1 OFFSET $2`

	rows, err := db.QueryContext(ctx, query, append([]any{limit, offset}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer closeRows(rows)

	result := []*posts.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return result, nil
}

func countPosts(ctx context.Context, db *sql.DB, authorIDs []uuid.UUID) (int, error) {
	where, args := authorClause(authorIDs, 1)

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts p`+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

func rowExists(ctx context.Context, db *sql.DB, query string, args ...any) (bool, error) {
	var exists bool
	if err := db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return exists, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
