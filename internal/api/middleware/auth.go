package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey       contextKey = "user_id"
	UserAccessToken contextKey = "user_access_token"
)

// AccessTokenValidator verifies an access token and returns its subject
type AccessTokenValidator interface {
	ValidateAccess(token string) (uuid.UUID, error)
}

// JWTAuthMiddleware authenticates requests carrying a Bearer access token
type JWTAuthMiddleware struct {
	validator AccessTokenValidator
}

// NewJWTAuthMiddleware creates a new auth middleware
func NewJWTAuthMiddleware(validator AccessTokenValidator) *JWTAuthMiddleware {
	return &JWTAuthMiddleware{validator: validator}
}

// RequireAuth middleware ensures the user is authenticated
// If not authenticated, returns 401
// If authenticated, injects the user id and access token into context
func (m *JWTAuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeAuthError(w, "Missing Authorization header")
			return
		}

		token, ok := bearerToken(authHeader)
		if !ok {
			writeAuthError(w, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		userID, err := m.validator.ValidateAccess(token)
		if err != nil {
			log.Printf("[AUTH_FAILURE] type=verification_failed ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			writeAuthError(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		ctx = context.WithValue(ctx, UserAccessToken, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth middleware loads user info if authenticated, but doesn't require it
// An invalid token is treated as anonymous
func (m *JWTAuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := m.validator.ValidateAccess(token)
		if err != nil {
			log.Printf("[AUTH_OPTIONAL] ignoring invalid token ip=%s path=%s error=%v", r.RemoteAddr, r.URL.Path, err)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		ctx = context.WithValue(ctx, UserAccessToken, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

// GetUserID extracts the authenticated user id from the request context
// Returns uuid.Nil if not authenticated
func GetUserID(r *http.Request) uuid.UUID {
	return GetAuthenticatedUserID(r.Context())
}

// GetAuthenticatedUserID extracts the user id from a context
func GetAuthenticatedUserID(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(UserIDKey).(uuid.UUID)
	return id
}

// SetTestUserID sets the user id in context for testing
func SetTestUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// GetUserAccessToken extracts the raw access token from the request context
func GetUserAccessToken(r *http.Request) string {
	token, _ := r.Context().Value(UserAccessToken).(string)
	return token
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	response := `{"error":"AuthenticationRequired","message":"` + message + `"}`
	if _, err := w.Write([]byte(response)); err != nil {
		log.Printf("Failed to write auth error response: %v", err)
	}
}
