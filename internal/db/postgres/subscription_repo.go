package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Parlor/internal/core/subscriptions"

	"github.com/google/uuid"
)

type postgresSubscriptionRepo struct {
	db *sql.DB
}

// NewSubscriptionRepository creates a new PostgreSQL subscription repository
func NewSubscriptionRepository(db *sql.DB) subscriptions.Repository {
	return &postgresSubscriptionRepo{db: db}
}

// NewUserLookup resolves user privacy for subscription decisions
func NewUserLookup(db *sql.DB) subscriptions.UserLookup {
	return &postgresSubscriptionRepo{db: db}
}

const subscriptionColumns = `id, follower_id, following_id, status, created_at`

func scanSubscription(row rowScanner) (*subscriptions.Subscription, error) {
	sub := &subscriptions.Subscription{}
	if err := row.Scan(&sub.ID, &sub.FollowerID, &sub.FollowingID, &sub.Status, &sub.CreatedAt); err != nil {
		return nil, err
	}
	return sub, nil
}

// Create inserts a follow edge
func (r *postgresSubscriptionRepo) Create(ctx context.Context, sub *subscriptions.Subscription) (*subscriptions.Subscription, error) {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}

	query := `
		INSERT INTO subscriptions (id, follower_id, following_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + subscriptionColumns

	created, err := scanSubscription(r.db.QueryRowContext(ctx, query,
		sub.ID, sub.FollowerID, sub.FollowingID, sub.Status))
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "subscriptions_pair_key") {
			return nil, subscriptions.ErrAlreadySubscribed
		}
		if isForeignKeyViolation(err) {
			return nil, subscriptions.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return created, nil
}

// GetByID retrieves a subscription by id
func (r *postgresSubscriptionRepo) GetByID(ctx context.Context, id uuid.UUID) (*subscriptions.Subscription, error) {
	sub, err := scanSubscription(r.db.QueryRowContext(ctx,
		`SELECT `+subscriptionColumns+` FROM subscriptions WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, subscriptions.ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return sub, nil
}

// GetByPair retrieves the edge follower->following
func (r *postgresSubscriptionRepo) GetByPair(ctx context.Context, followerID, followingID uuid.UUID) (*subscriptions.Subscription, error) {
	sub, err := scanSubscription(r.db.QueryRowContext(ctx,
		`SELECT `+subscriptionColumns+` FROM subscriptions WHERE follower_id = $1 AND following_id = $2`,
		followerID, followingID))
	if err == sql.ErrNoRows {
		return nil, subscriptions.ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return sub, nil
}

// UpdateStatus changes the approval state of an edge
func (r *postgresSubscriptionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status subscriptions.Status) (*subscriptions.Subscription, error) {
	sub, err := scanSubscription(r.db.QueryRowContext(ctx,
		`UPDATE subscriptions SET status = $2 WHERE id = $1 RETURNING `+subscriptionColumns, id, status))
	if err == sql.ErrNoRows {
		return nil, subscriptions.ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}
	return sub, nil
}

// Delete removes an edge
func (r *postgresSubscriptionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM subscriptions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return requireAffected(result, subscriptions.ErrSubscriptionNotFound)
}

// ListFollowers returns edges pointing at userID with the given status
func (r *postgresSubscriptionRepo) ListFollowers(ctx context.Context, userID uuid.UUID, status subscriptions.Status) ([]*subscriptions.SubscriptionView, error) {
	return r.listViews(ctx, `s.following_id = $1`, userID, status)
}

// ListFollowing returns edges leaving userID with the given status
func (r *postgresSubscriptionRepo) ListFollowing(ctx context.Context, userID uuid.UUID, status subscriptions.Status) ([]*subscriptions.SubscriptionView, error) {
	return r.listViews(ctx, `s.follower_id = $1`, userID, status)
}

func (r *postgresSubscriptionRepo) listViews(ctx context.Context, where string, userID uuid.UUID, status subscriptions.Status) ([]*subscriptions.SubscriptionView, error) {
	query := `
		SELECT s.id, s.follower_id, s.following_id, s.status, s.created_at,
			fu.username, tu.username
		FROM subscriptions s
		JOIN users fu ON fu.id = s.follower_id
		JOIN users tu ON tu.id = s.following_id
		WHERE ` + where + ` AND s.status = $2
		ORDER BY s.created_at DESC, s.id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer closeRows(rows)

	result := []*subscriptions.SubscriptionView{}
	for rows.Next() {
		view := &subscriptions.SubscriptionView{}
		if err := rows.Scan(&view.ID, &view.FollowerID, &view.FollowingID, &view.Status, &view.CreatedAt,
			&view.FollowerUsername, &view.FollowingUsername); err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscriptions: %w", err)
	}

	return result, nil
}

// GetOutgoing returns the ids userID follows, pending edges included
func (r *postgresSubscriptionRepo) GetOutgoing(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT following_id FROM subscriptions WHERE follower_id = $1 ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list outgoing subscriptions: %w", err)
	}
	defer closeRows(rows)

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan subscription target: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscription targets: %w", err)
	}

	return ids, nil
}

// IsSubscribed reports whether any edge follower->following exists
func (r *postgresSubscriptionRepo) IsSubscribed(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	return rowExists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM subscriptions WHERE follower_id = $1 AND following_id = $2)`,
		followerID, followingID)
}

// IsPrivate reports the privacy flag of a user
func (r *postgresSubscriptionRepo) IsPrivate(ctx context.Context, userID uuid.UUID) (bool, error) {
	var private bool
	err := r.db.QueryRowContext(ctx, `SELECT is_private FROM users WHERE id = $1`, userID).Scan(&private)
	if err == sql.ErrNoRows {
		return false, subscriptions.ErrUserNotFound
	}
	if err != nil {
		return false, fmt.Errorf("failed to get user privacy: %w", err)
	}
	return private, nil
}
