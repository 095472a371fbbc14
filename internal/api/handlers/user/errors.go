package user

import (
	"errors"
	"net/http"

	"Parlor/internal/api/handlers"
	"Parlor/internal/core/users"
)

func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	handlers.WriteError(w, statusCode, errorType, message)
}

// handleServiceError maps user service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, users.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "UserNotFound", "User not found")
	case errors.Is(err, users.ErrNotAuthorized):
		writeError(w, http.StatusForbidden, "NotAuthorized", err.Error())
	case users.IsConflict(err):
		writeError(w, http.StatusConflict, "Conflict", err.Error())
	case users.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	default:
		handlers.WriteInternalError(w, "user", err)
	}
}
