package users

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account
// PasswordHash and refresh token fields never leave the server
type User struct {
	CreatedAt             time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt             *time.Time `json:"updatedAt,omitempty" db:"updated_at"`
	RefreshTokenExpiresAt *time.Time `json:"-" db:"refresh_token_expires_at"`
	AvatarURL             *string    `json:"avatarUrl,omitempty" db:"avatar_url"`
	Bio                   *string    `json:"bio,omitempty" db:"bio"`
	Username              string     `json:"username" db:"username"`
	Email                 string     `json:"email" db:"email"`
	PasswordHash          string     `json:"-" db:"password_hash"`
	RefreshTokenHash      string     `json:"-" db:"refresh_token_hash"`
	ID                    uuid.UUID  `json:"id" db:"id"`
	IsPrivate             bool       `json:"isPrivate" db:"is_private"`
}

// CreateUserRequest represents the input for creating a new user
// PasswordHash must already be hashed by the caller
type CreateUserRequest struct {
	AvatarURL    *string `json:"avatarUrl,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	IsPrivate    bool    `json:"isPrivate"`
}

// UpdateProfileRequest is a partial update: nil fields are left unchanged
type UpdateProfileRequest struct {
	Username  *string `json:"username,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	IsPrivate *bool   `json:"isPrivate,omitempty"`
}

// ProfileStats contains aggregated user statistics
// Follower and following counts include approved subscriptions only
type ProfileStats struct {
	PostCount      int `json:"postCount"`
	FollowerCount  int `json:"followerCount"`
	FollowingCount int `json:"followingCount"`
}

// ProfileView is the public profile response
type ProfileView struct {
	CreatedAt time.Time     `json:"createdAt"`
	AvatarURL *string       `json:"avatarUrl,omitempty"`
	Bio       *string       `json:"bio,omitempty"`
	Stats     *ProfileStats `json:"stats,omitempty"`
	Username  string        `json:"username"`
	ID        uuid.UUID     `json:"id"`
	IsPrivate bool          `json:"isPrivate"`
}
