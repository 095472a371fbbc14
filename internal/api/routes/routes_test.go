package routes

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"Parlor/internal/api/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type rejectAll struct{}

func (rejectAll) ValidateAccess(string) (uuid.UUID, error) {
	return uuid.Nil, errors.New("invalid token")
}

// Protected routes must be rejected by RequireAuth before reaching a handler,
// so nil services are safe here.
func TestProtectedRoutesRequireAuth(t *testing.T) {
	authMiddleware := middleware.NewJWTAuthMiddleware(rejectAll{})

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		RegisterAuthRoutes(r, nil, authMiddleware)
		RegisterUserRoutes(r, nil, authMiddleware)
		RegisterPostRoutes(r, nil, authMiddleware)
		RegisterCommentRoutes(r, nil, authMiddleware)
		RegisterSubscriptionRoutes(r, nil, authMiddleware)
		RegisterLikeRoutes(r, nil, authMiddleware)
		RegisterRepostRoutes(r, nil, authMiddleware)
		RegisterBookmarkRoutes(r, nil, authMiddleware)
		RegisterFeedRoutes(r, nil, authMiddleware)
	})

	id := uuid.NewString()
	protected := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/logout"},
		{http.MethodPut, "/api/users/" + id},
		{http.MethodDelete, "/api/users/" + id},
		{http.MethodPost, "/api/posts"},
		{http.MethodPut, "/api/posts/" + id},
		{http.MethodDelete, "/api/posts/" + id},
		{http.MethodPost, "/api/comments"},
		{http.MethodDelete, "/api/comments/" + id},
		{http.MethodPost, "/api/subscriptions"},
		{http.MethodGet, "/api/subscriptions/pending"},
		{http.MethodPost, "/api/subscriptions/" + id + "/approve"},
		{http.MethodPost, "/api/likes"},
		{http.MethodGet, "/api/likes/check/" + id},
		{http.MethodPost, "/api/reposts"},
		{http.MethodDelete, "/api/reposts/" + id},
		{http.MethodGet, "/api/bookmarks"},
		{http.MethodGet, "/api/bookmarks/" + id},
		{http.MethodGet, "/api/feed/personal"},
	}

	for _, tc := range protected {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
