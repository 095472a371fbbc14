package subscription

import (
	"errors"
	"net/http"

	"Parlor/internal/api/handlers"
	"Parlor/internal/core/subscriptions"
)

func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	handlers.WriteError(w, statusCode, errorType, message)
}

// handleServiceError maps subscription errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, subscriptions.ErrNotAuthorized):
		writeError(w, http.StatusForbidden, "NotAuthorized", err.Error())
	case subscriptions.IsConflict(err):
		writeError(w, http.StatusConflict, "Conflict", err.Error())
	case subscriptions.IsNotFound(err):
		writeError(w, http.StatusNotFound, "NotFound", err.Error())
	case subscriptions.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	default:
		handlers.WriteInternalError(w, "subscription", err)
	}
}
