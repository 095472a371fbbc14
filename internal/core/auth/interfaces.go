package auth

import (
	"context"
	"time"

	"Parlor/internal/core/users"
	"Parlor/internal/security"

	"github.com/google/uuid"
)

// PasswordHasher hashes and verifies passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(encodedHash, password string) error
}

// TokenIssuer issues token pairs and verifies refresh tokens
type TokenIssuer interface {
	GenerateTokens(userID uuid.UUID, username string) (*security.TokenPair, error)
	ValidateRefresh(token string) (uuid.UUID, error)
}

// ResetTokenStore holds single-use reset tokens with an expiry
// Consume returns ErrInvalidResetToken when the token is absent
type ResetTokenStore interface {
	Save(ctx context.Context, token, email string, ttl time.Duration) error
	Consume(ctx context.Context, token string) (string, error)
}

// RegisterRequest is the body of POST /api/auth/register
type RegisterRequest struct {
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	IsPrivate bool    `json:"isPrivate"`
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetPasswordRequest is the body of POST /api/auth/reset-password
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// AuthResponse is returned by register, login and refresh
type AuthResponse struct {
	User   *users.User         `json:"user"`
	Tokens *security.TokenPair `json:"tokens"`
}

// Service defines the authentication flows
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}
