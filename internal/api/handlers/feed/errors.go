package feed

import (
	"errors"
	"log"
	"net/http"

	"Parlor/internal/api/handlers"
	"Parlor/internal/core/newsfeed"
)

func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	handlers.WriteError(w, statusCode, errorType, message)
}

// handleServiceError maps feed errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, newsfeed.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "AuthenticationRequired", "Authentication required")
	case errors.Is(err, newsfeed.ErrTargetNotFound):
		writeError(w, http.StatusNotFound, "UserNotFound", "User not found")
	case errors.Is(err, newsfeed.ErrForbidden):
		writeError(w, http.StatusForbidden, "Forbidden", "This account is private")
	default:
		log.Printf("ERROR: Feed service error: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
	}
}
