package repost

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Parlor/internal/api/middleware"
	"Parlor/internal/core/reposts"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepostService struct {
	mock.Mock
}

func (m *MockRepostService) Repost(ctx context.Context, actorID uuid.UUID, req reposts.CreateRepostRequest) (*reposts.Repost, error) {
	args := m.Called(ctx, actorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reposts.Repost), args.Error(1)
}

func (m *MockRepostService) Unrepost(ctx context.Context, actorID, postID uuid.UUID) error {
	args := m.Called(ctx, actorID, postID)
	return args.Error(0)
}

func (m *MockRepostService) GetRepost(ctx context.Context, id uuid.UUID) (*reposts.Repost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reposts.Repost), args.Error(1)
}

func (m *MockRepostService) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*reposts.Repost, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reposts.Repost), args.Error(1)
}

func (m *MockRepostService) ListByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]*reposts.Repost, error) {
	args := m.Called(ctx, postID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reposts.Repost), args.Error(1)
}

func (m *MockRepostService) HasReposted(ctx context.Context, actorID, postID uuid.UUID) (bool, error) {
	args := m.Called(ctx, actorID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepostService) Count(ctx context.Context, postID uuid.UUID) (int, error) {
	args := m.Called(ctx, postID)
	return args.Int(0), args.Error(1)
}

func newRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/api/reposts", h.HandleRepost)
	r.Delete("/api/reposts/{postId}", h.HandleUnrepost)
	r.Get("/api/reposts/user/{userId}", h.HandleListByUser)
	r.Get("/api/reposts/post/{postId}", h.HandleListByPost)
	r.Get("/api/reposts/check/{postId}", h.HandleCheck)
	r.Get("/api/reposts/count/{postId}", h.HandleCount)
	r.Get("/api/reposts/{id}", h.HandleGet)
	return r
}

func TestHandleRepost(t *testing.T) {
	me := uuid.New()
	original := uuid.New()

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"created", nil, http.StatusCreated},
		{"duplicate", reposts.ErrAlreadyReposted, http.StatusConflict},
		{"missing post", reposts.ErrPostNotFound, http.StatusNotFound},
		{"comment too long", &reposts.ValidationError{Field: "comment", Message: "too long"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockRepostService)
			if tt.serviceErr != nil {
				svc.On("Repost", mock.Anything, me, mock.Anything).Return(nil, tt.serviceErr)
			} else {
				svc.On("Repost", mock.Anything, me, mock.MatchedBy(func(req reposts.CreateRepostRequest) bool {
					return req.OriginalPostID == original && req.Comment != nil && *req.Comment == "nice"
				})).Return(&reposts.Repost{ID: uuid.New(), UserID: me, OriginalPostID: original}, nil)
			}

			body := `{"originalPostId":"` + original.String() + `","comment":"nice"}`
			req := httptest.NewRequest(http.MethodPost, "/api/reposts", strings.NewReader(body))
			req = req.WithContext(middleware.SetTestUserID(req.Context(), me))
			w := httptest.NewRecorder()
			newRouter(NewHandler(svc)).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandleRepost_RequiresAuth(t *testing.T) {
	svc := new(MockRepostService)

	req := httptest.NewRequest(http.MethodPost, "/api/reposts", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	newRouter(NewHandler(svc)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "Repost", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleListByUser_PassesPaging(t *testing.T) {
	svc := new(MockRepostService)
	userID := uuid.New()
	svc.On("ListByUser", mock.Anything, userID, 5, 10).Return([]*reposts.Repost{{ID: uuid.New()}}, nil)

	w := httptest.NewRecorder()
	newRouter(NewHandler(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reposts/user/"+userID.String()+"?limit=5&offset=10", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var list []*reposts.Repost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestHandleUnrepost_NotFound(t *testing.T) {
	svc := new(MockRepostService)
	me := uuid.New()
	postID := uuid.New()
	svc.On("Unrepost", mock.Anything, me, postID).Return(reposts.ErrRepostNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/reposts/"+postID.String(), nil)
	req = req.WithContext(middleware.SetTestUserID(req.Context(), me))
	w := httptest.NewRecorder()
	newRouter(NewHandler(svc)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGet_BadID(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(NewHandler(new(MockRepostService))).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reposts/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
