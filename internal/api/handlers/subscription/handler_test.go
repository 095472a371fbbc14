package subscription

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Parlor/internal/api/middleware"
	"Parlor/internal/core/subscriptions"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) Subscribe(ctx context.Context, followerID, followingID uuid.UUID) (*subscriptions.Subscription, error) {
	args := m.Called(ctx, followerID, followingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscriptions.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) GetSubscription(ctx context.Context, id uuid.UUID) (*subscriptions.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscriptions.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) Approve(ctx context.Context, actorID, id uuid.UUID) (*subscriptions.Subscription, error) {
	args := m.Called(ctx, actorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscriptions.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) Reject(ctx context.Context, actorID, id uuid.UUID) error {
	return m.Called(ctx, actorID, id).Error(0)
}

func (m *MockSubscriptionService) Unsubscribe(ctx context.Context, actorID, id uuid.UUID) error {
	return m.Called(ctx, actorID, id).Error(0)
}

func (m *MockSubscriptionService) Followers(ctx context.Context, userID uuid.UUID, status subscriptions.Status) ([]*subscriptions.SubscriptionView, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscriptions.SubscriptionView), args.Error(1)
}

func (m *MockSubscriptionService) Following(ctx context.Context, userID uuid.UUID, status subscriptions.Status) ([]*subscriptions.SubscriptionView, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscriptions.SubscriptionView), args.Error(1)
}

func (m *MockSubscriptionService) PendingRequests(ctx context.Context, actorID uuid.UUID) ([]*subscriptions.SubscriptionView, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscriptions.SubscriptionView), args.Error(1)
}

func newRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/api/subscriptions", h.HandleSubscribe)
	r.Get("/api/subscriptions/pending", h.HandlePending)
	r.Get("/api/subscriptions/followers/{userId}", h.HandleFollowers)
	r.Get("/api/subscriptions/following/{userId}", h.HandleFollowing)
	r.Get("/api/subscriptions/{id}", h.HandleGet)
	r.Post("/api/subscriptions/{id}/approve", h.HandleApprove)
	r.Post("/api/subscriptions/{id}/reject", h.HandleReject)
	r.Delete("/api/subscriptions/{id}", h.HandleUnsubscribe)
	return r
}

func as(req *http.Request, userID uuid.UUID) *http.Request {
	return req.WithContext(middleware.SetTestUserID(req.Context(), userID))
}

func TestHandleSubscribe(t *testing.T) {
	svc := new(MockSubscriptionService)
	me := uuid.New()
	target := uuid.New()
	svc.On("Subscribe", mock.Anything, me, target).Return(&subscriptions.Subscription{
		ID: uuid.New(), FollowerID: me, FollowingID: target, Status: subscriptions.StatusPending,
	}, nil)

	req := as(httptest.NewRequest(http.MethodPost, "/api/subscriptions",
		strings.NewReader(`{"followingId":"`+target.String()+`"}`)), me)
	w := httptest.NewRecorder()
	newRouter(NewHandler(svc)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
}

func TestHandleSubscribe_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"duplicate", subscriptions.ErrAlreadySubscribed, http.StatusConflict},
		{"self", subscriptions.NewValidationError("followingId", "cannot subscribe to yourself"), http.StatusBadRequest},
		{"missing user", subscriptions.ErrUserNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockSubscriptionService)
			svc.On("Subscribe", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			req := as(httptest.NewRequest(http.MethodPost, "/api/subscriptions",
				strings.NewReader(`{"followingId":"`+uuid.NewString()+`"}`)), uuid.New())
			w := httptest.NewRecorder()
			newRouter(NewHandler(svc)).ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandleFollowers_PassesStatus(t *testing.T) {
	svc := new(MockSubscriptionService)
	userID := uuid.New()
	svc.On("Followers", mock.Anything, userID, subscriptions.StatusPending).Return([]*subscriptions.SubscriptionView{}, nil)

	w := httptest.NewRecorder()
	newRouter(NewHandler(svc)).ServeHTTP(w,
		httptest.NewRequest(http.MethodGet, "/api/subscriptions/followers/"+userID.String()+"?status=pending", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandleApprove_OnlyTarget(t *testing.T) {
	svc := new(MockSubscriptionService)
	me := uuid.New()
	id := uuid.New()
	svc.On("Approve", mock.Anything, me, id).Return(nil, subscriptions.ErrNotAuthorized)

	w := httptest.NewRecorder()
	newRouter(NewHandler(svc)).ServeHTTP(w,
		as(httptest.NewRequest(http.MethodPost, "/api/subscriptions/"+id.String()+"/approve", nil), me))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandleRejectAndUnsubscribe(t *testing.T) {
	svc := new(MockSubscriptionService)
	me := uuid.New()
	id := uuid.New()
	svc.On("Reject", mock.Anything, me, id).Return(nil)
	svc.On("Unsubscribe", mock.Anything, me, id).Return(subscriptions.ErrSubscriptionNotFound)

	router := newRouter(NewHandler(svc))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, as(httptest.NewRequest(http.MethodPost, "/api/subscriptions/"+id.String()+"/reject", nil), me))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, as(httptest.NewRequest(http.MethodDelete, "/api/subscriptions/"+id.String(), nil), me))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlePending_RequiresAuth(t *testing.T) {
	svc := new(MockSubscriptionService)

	w := httptest.NewRecorder()
	newRouter(NewHandler(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/subscriptions/pending", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
