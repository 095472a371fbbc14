package users

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data persistence
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, limit, offset int) ([]*User, error)

	// Update persists username, bio, avatar, privacy and updated_at.
	// Returns ErrUsernameTaken on a unique violation.
	Update(ctx context.Context, user *User) (*User, error)

	// Delete removes the user; posts, comments, subscriptions, likes,
	// reposts and bookmarks are removed by cascade.
	Delete(ctx context.Context, id uuid.UUID) error

	// UpdatePassword replaces the stored password hash
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// SetRefreshToken stores the hash of the current refresh token.
	// An empty hash clears it (logout).
	SetRefreshToken(ctx context.Context, id uuid.UUID, tokenHash string, expiresAt *time.Time) error

	// GetByRefreshToken looks up the owner of a refresh token hash
	GetByRefreshToken(ctx context.Context, tokenHash string) (*User, error)

	// GetProfileStats retrieves aggregated statistics for a user profile.
	GetProfileStats(ctx context.Context, id uuid.UUID) (*ProfileStats, error)
}

// UserService defines the interface for user business logic
type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*User, error)

	// UpdateProfile applies a partial profile update. Only the account owner may update it.
	UpdateProfile(ctx context.Context, actorID, id uuid.UUID, req UpdateProfileRequest) (*User, error)

	// DeleteAccount removes the account. Only the account owner may delete it.
	DeleteAccount(ctx context.Context, actorID, id uuid.UUID) error

	// GetProfile retrieves a user's public profile with aggregated statistics.
	GetProfile(ctx context.Context, id uuid.UUID) (*ProfileView, error)
}
