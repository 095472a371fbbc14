package postgres

import (
	"context"
	"testing"
	"time"

	"Parlor/internal/core/posts"
	"Parlor/internal/core/subscriptions"
	"Parlor/internal/core/users"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_CreateAndLookup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, false)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, byID.Username)

	byEmail, err := repo.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byName, err := repo.GetByUsername(ctx, user.Username)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestUserRepo_DuplicateConstraints(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, false)

	_, err := repo.Create(ctx, &users.User{Username: user.Username, Email: "fresh-" + user.Email, PasswordHash: "h"})
	assert.ErrorIs(t, err, users.ErrUsernameTaken)

	_, err = repo.Create(ctx, &users.User{Username: "fresh" + user.Username[1:], Email: user.Email, PasswordHash: "h"})
	assert.ErrorIs(t, err, users.ErrEmailTaken)
}

func TestUserRepo_RefreshToken(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, false)
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	require.NoError(t, repo.SetRefreshToken(ctx, user.ID, "hash-1", &expires))
	owner, err := repo.GetByRefreshToken(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, owner.ID)
	require.NotNil(t, owner.RefreshTokenExpiresAt)
	assert.True(t, owner.RefreshTokenExpiresAt.Equal(expires))

	require.NoError(t, repo.SetRefreshToken(ctx, user.ID, "", nil))
	_, err = repo.GetByRefreshToken(ctx, "hash-1")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestUserRepo_ProfileStatsCountsApprovedOnly(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	subRepo := NewSubscriptionRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	target := createTestUser(t, db, true)
	approved := createTestUser(t, db, false)
	pending := createTestUser(t, db, false)

	_, err := subRepo.Create(ctx, &subscriptions.Subscription{FollowerID: approved.ID, FollowingID: target.ID, Status: subscriptions.StatusApproved})
	require.NoError(t, err)
	_, err = subRepo.Create(ctx, &subscriptions.Subscription{FollowerID: pending.ID, FollowingID: target.ID, Status: subscriptions.StatusPending})
	require.NoError(t, err)
	_, err = postRepo.Create(ctx, &posts.Post{AuthorID: target.ID, Content: "hello"})
	require.NoError(t, err)

	stats, err := userRepo.GetProfileStats(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.PostCount)
	assert.Equal(t, 1, stats.FollowerCount)
	assert.Equal(t, 0, stats.FollowingCount)
}

func TestUserRepo_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, false)
	post, err := postRepo.Create(ctx, &posts.Post{AuthorID: user.ID, Content: "bye"})
	require.NoError(t, err)

	require.NoError(t, userRepo.Delete(ctx, user.ID))
	_, err = postRepo.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, posts.ErrPostNotFound)

	assert.ErrorIs(t, userRepo.Delete(ctx, user.ID), users.ErrUserNotFound)
}
