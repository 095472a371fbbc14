package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Parlor/internal/core/auth"
	"Parlor/internal/security"

	goredis "github.com/redis/go-redis/v9"
)

const resetKeyPrefix = "parlor:reset:"

// ResetTokenStore keeps password reset tokens as expiring keys.
// Keys are the SHA-256 of the token so raw tokens never sit in Redis.
type ResetTokenStore struct {
	rdb goredis.Cmdable
}

// NewResetTokenStore creates a store over any Redis client
func NewResetTokenStore(rdb goredis.Cmdable) *ResetTokenStore {
	return &ResetTokenStore{rdb: rdb}
}

func resetKey(token string) string {
	return resetKeyPrefix + security.HashToken(token)
}

// Save maps token to email for ttl
func (s *ResetTokenStore) Save(ctx context.Context, token, email string, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, resetKey(token), email, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}
	return nil
}

// Consume atomically reads and deletes the token, returning its email
func (s *ResetTokenStore) Consume(ctx context.Context, token string) (string, error) {
	email, err := s.rdb.GetDel(ctx, resetKey(token)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", auth.ErrInvalidResetToken
	}
	if err != nil {
		return "", fmt.Errorf("failed to consume reset token: %w", err)
	}
	return email, nil
}
