package bookmarks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, bookmark *Bookmark) (*Bookmark, error) {
	args := m.Called(ctx, bookmark)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Bookmark), args.Error(1)
}

func (m *MockRepository) DeleteByUserAndPost(ctx context.Context, userID, postID uuid.UUID) error {
	return m.Called(ctx, userID, postID).Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Bookmark, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Bookmark), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Bookmark, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Bookmark), args.Error(1)
}

func (m *MockRepository) Exists(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) PostExists(ctx context.Context, postID uuid.UUID) (bool, error) {
	args := m.Called(ctx, postID)
	return args.Bool(0), args.Error(1)
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	user, postID := uuid.New(), uuid.New()

	repo := new(MockRepository)
	service := NewBookmarkService(repo)
	repo.On("PostExists", ctx, postID).Return(true, nil)
	repo.On("Create", ctx, mock.MatchedBy(func(b *Bookmark) bool {
		return b.UserID == user && b.PostID == postID
	})).Return(&Bookmark{ID: uuid.New(), UserID: user, PostID: postID}, nil).Once()
	repo.On("Create", ctx, mock.Anything).Return(nil, ErrAlreadyBookmarked).Once()

	b, err := service.Add(ctx, user, postID)
	require.NoError(t, err)
	assert.Equal(t, postID, b.PostID)

	_, err = service.Add(ctx, user, postID)
	assert.ErrorIs(t, err, ErrAlreadyBookmarked)
}

func TestAdd_MissingPost(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New()

	repo := new(MockRepository)
	service := NewBookmarkService(repo)
	repo.On("PostExists", ctx, postID).Return(false, nil)

	_, err := service.Add(ctx, uuid.New(), postID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestGet_OwnerOnly(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	id := uuid.New()

	repo := new(MockRepository)
	service := NewBookmarkService(repo)
	repo.On("GetByID", ctx, id).Return(&Bookmark{ID: id, UserID: owner}, nil)

	b, err := service.Get(ctx, owner, id)
	require.NoError(t, err)
	assert.Equal(t, id, b.ID)

	_, err = service.Get(ctx, uuid.New(), id)
	assert.ErrorIs(t, err, ErrBookmarkNotFound)
}

func TestRemoveAndList(t *testing.T) {
	ctx := context.Background()
	user, postID := uuid.New(), uuid.New()

	repo := new(MockRepository)
	service := NewBookmarkService(repo)
	repo.On("DeleteByUserAndPost", ctx, user, postID).Return(ErrBookmarkNotFound)
	repo.On("ListByUser", ctx, user, 50, 0).Return([]*Bookmark{}, nil)

	assert.True(t, IsNotFound(service.Remove(ctx, user, postID)))

	list, err := service.List(ctx, user, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = service.List(ctx, uuid.Nil, 10, 0)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}
