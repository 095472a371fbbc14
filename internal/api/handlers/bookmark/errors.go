package bookmark

import (
	"errors"
	"net/http"

	"Parlor/internal/api/handlers"
	"Parlor/internal/api/handlers/common"
	"Parlor/internal/core/bookmarks"
)

func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bookmarks.ErrNotAuthorized):
		common.WriteAuthRequired(w)
	case errors.Is(err, bookmarks.ErrAlreadyBookmarked):
		handlers.WriteError(w, http.StatusConflict, "AlreadyBookmarked", err.Error())
	case bookmarks.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", err.Error())
	default:
		handlers.WriteInternalError(w, "bookmark", err)
	}
}
