package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"Parlor/internal/core/users"

	"github.com/google/uuid"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.UserRepository {
	return &postgresUserRepo{db: db}
}

const userColumns = `id, username, email, password_hash, avatar_url, bio, is_private,
	COALESCE(refresh_token_hash, ''), refresh_token_expires_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*users.User, error) {
	user := &users.User{}
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.AvatarURL, &user.Bio, &user.IsPrivate,
		&user.RefreshTokenHash, &user.RefreshTokenExpiresAt, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// mapUserConstraint translates unique violations into domain errors
func mapUserConstraint(err error) error {
	msg := err.Error()
	if !strings.Contains(msg, "duplicate key") {
		return nil
	}
	if strings.Contains(msg, "users_username_key") {
		return users.ErrUsernameTaken
	}
	if strings.Contains(msg, "users_email_key") {
		return users.ErrEmailTaken
	}
	return nil
}

// Create inserts a new user into the users table
func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	query := `
		INSERT INTO users (id, username, email, password_hash, avatar_url, bio, is_private)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	created, err := scanUser(r.db.QueryRowContext(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.AvatarURL, user.Bio, user.IsPrivate))
	if err != nil {
		if mapped := mapUserConstraint(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

func (r *postgresUserRepo) getOne(ctx context.Context, what, where string, arg any) (*users.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where
	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by %s: %w", what, err)
	}
	return user, nil
}

// GetByID retrieves a user by id
func (r *postgresUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*users.User, error) {
	return r.getOne(ctx, "id", "id = $1", id)
}

// GetByEmail retrieves a user by normalized email
func (r *postgresUserRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	return r.getOne(ctx, "email", "email = $1", email)
}

// GetByUsername retrieves a user by username
func (r *postgresUserRepo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	return r.getOne(ctx, "username", "username = $1", username)
}

// GetByRefreshToken looks up the owner of a refresh token hash
func (r *postgresUserRepo) GetByRefreshToken(ctx context.Context, tokenHash string) (*users.User, error) {
	if tokenHash == "" {
		return nil, users.ErrUserNotFound
	}
	return r.getOne(ctx, "refresh token", "refresh_token_hash = $1", tokenHash)
}

// List returns users ordered by creation time
func (r *postgresUserRepo) List(ctx context.Context, limit, offset int) ([]*users.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at ASC, id ASC LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer closeRows(rows)

	result := []*users.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return result, nil
}

// Update persists the mutable profile fields
func (r *postgresUserRepo) Update(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		UPDATE users
		SET username = $2, avatar_url = $3, bio = $4, is_private = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	updated, err := scanUser(r.db.QueryRowContext(ctx, query,
		user.ID, user.Username, user.AvatarURL, user.Bio, user.IsPrivate))
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		if mapped := mapUserConstraint(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return updated, nil
}

// Delete removes the user; dependent rows are removed by cascade
func (r *postgresUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return requireAffected(result, users.ErrUserNotFound)
}

// UpdatePassword replaces the stored password hash
func (r *postgresUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return requireAffected(result, users.ErrUserNotFound)
}

// SetRefreshToken stores the current refresh token hash; empty clears it
func (r *postgresUserRepo) SetRefreshToken(ctx context.Context, id uuid.UUID, tokenHash string, expiresAt *time.Time) error {
	var hash sql.NullString
	if tokenHash != "" {
		hash = sql.NullString{String: tokenHash, Valid: true}
	} else {
		expiresAt = nil
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET refresh_token_hash = $2, refresh_token_expires_at = $3 WHERE id = $1`,
		id, hash, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to set refresh token: %w", err)
	}
	return requireAffected(result, users.ErrUserNotFound)
}

// GetProfileStats counts posts and approved subscriptions in one round trip
func (r *postgresUserRepo) GetProfileStats(ctx context.Context, id uuid.UUID) (*users.ProfileStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM posts WHERE author_id = $1),
			(SELECT COUNT(*) FROM subscriptions WHERE following_id = $1 AND status = 'approved'),
			(SELECT COUNT(*) FROM subscriptions WHERE follower_id = $1 AND status = 'approved')`

	stats := &users.ProfileStats{}
	if err := r.db.QueryRowContext(ctx, query, id).
		Scan(&stats.PostCount, &stats.FollowerCount, &stats.FollowingCount); err != nil {
		return nil, fmt.Errorf("failed to get profile stats: %w", err)
	}
	return stats, nil
}
