package auth

import (
	"errors"
	"net/http"

	"Parlor/internal/api/handlers"
	"Parlor/internal/core/auth"
	"Parlor/internal/core/users"
)

func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	handlers.WriteError(w, statusCode, errorType, message)
}

// handleServiceError maps auth and user errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case auth.IsUnauthorized(err):
		writeError(w, http.StatusUnauthorized, "AuthenticationFailed", err.Error())

	case errors.Is(err, auth.ErrInvalidResetToken):
		writeError(w, http.StatusBadRequest, "InvalidResetToken", err.Error())

	case errors.Is(err, users.ErrUsernameTaken):
		writeError(w, http.StatusConflict, "UsernameTaken", err.Error())

	case errors.Is(err, users.ErrEmailTaken):
		writeError(w, http.StatusConflict, "EmailTaken", err.Error())

	case auth.IsValidationError(err) || users.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	default:
		// Don't leak internal error details to clients
		handlers.WriteInternalError(w, "auth", err)
	}
}
