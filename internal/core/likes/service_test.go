package likes

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Add(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Remove(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Count(ctx context.Context, postID uuid.UUID) (int, error) {
	args := m.Called(ctx, postID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) Exists(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ListByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]*Like, error) {
	args := m.Called(ctx, postID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Like), args.Error(1)
}

func (m *MockRepository) PostExists(ctx context.Context, postID uuid.UUID) (bool, error) {
	args := m.Called(ctx, postID)
	return args.Bool(0), args.Error(1)
}

func TestLike(t *testing.T) {
	ctx := context.Background()
	postID, user := uuid.New(), uuid.New()

	t.Run("first like is recorded", func(t *testing.T) {
		repo := new(MockRepository)
		service := NewLikeService(repo, nil, nil)
		repo.On("PostExists", ctx, postID).Return(true, nil)
		repo.On("Add", ctx, postID, user).Return(true, nil)

		added, err := service.Like(ctx, user, postID)
		require.NoError(t, err)
		assert.True(t, added)
	})

	t.Run("repeat like reports false", func(t *testing.T) {
		repo := new(MockRepository)
		service := NewLikeService(repo, nil, nil)
		repo.On("PostExists", ctx, postID).Return(true, nil)
		repo.On("Add", ctx, postID, user).Return(false, nil)

		added, err := service.Like(ctx, user, postID)
		require.NoError(t, err)
		assert.False(t, added)
	})

	t.Run("missing post", func(t *testing.T) {
		repo := new(MockRepository)
		service := NewLikeService(repo, nil, nil)
		repo.On("PostExists", ctx, postID).Return(false, nil)

		_, err := service.Like(ctx, user, postID)
		assert.ErrorIs(t, err, ErrPostNotFound)
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("anonymous", func(t *testing.T) {
		service := NewLikeService(new(MockRepository), nil, nil)
		_, err := service.Like(ctx, uuid.Nil, postID)
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})
}

func TestUnlike(t *testing.T) {
	ctx := context.Background()
	postID, user := uuid.New(), uuid.New()

	repo := new(MockRepository)
	service := NewLikeService(repo, nil, nil)
	repo.On("Remove", ctx, postID, user).Return(true, nil).Once()
	repo.On("Remove", ctx, postID, user).Return(false, nil).Once()

	removed, err := service.Unlike(ctx, user, postID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = service.Unlike(ctx, user, postID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestCountAndIsLiked(t *testing.T) {
	ctx := context.Background()
	postID, user := uuid.New(), uuid.New()

	repo := new(MockRepository)
	service := NewLikeService(repo, nil, nil)
	repo.On("PostExists", ctx, postID).Return(true, nil)
	repo.On("Count", ctx, postID).Return(7, nil)
	repo.On("Exists", ctx, postID, user).Return(true, nil)

	n, err := service.Count(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	liked, err := service.IsLiked(ctx, user, postID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = service.IsLiked(ctx, uuid.Nil, postID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestLike_RepositoryErrorPropagates(t *testing.T) {
	ctx := context.Background()
	postID, user := uuid.New(), uuid.New()

	repo := new(MockRepository)
	service := NewLikeService(repo, nil, nil)
	repo.On("PostExists", ctx, postID).Return(false, errors.New("connection reset"))

	_, err := service.Like(ctx, user, postID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to check post")
}
