package repost

import (
	"errors"
	"net/http"

	"Parlor/internal/api/handlers"
	"Parlor/internal/api/handlers/common"
	"Parlor/internal/core/reposts"
)

func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	handlers.WriteError(w, statusCode, errorType, message)
}

// handleServiceError maps repost errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reposts.ErrNotAuthorized):
		common.WriteAuthRequired(w)
	case errors.Is(err, reposts.ErrAlreadyReposted):
		writeError(w, http.StatusConflict, "AlreadyReposted", err.Error())
	case reposts.IsNotFound(err):
		writeError(w, http.StatusNotFound, "NotFound", err.Error())
	case reposts.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	default:
		handlers.WriteInternalError(w, "repost", err)
	}
}
