package like

import (
	"errors"
	"net/http"

	"Parlor/internal/api/handlers"
	"Parlor/internal/api/handlers/common"
	"Parlor/internal/core/likes"
)

func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, likes.ErrNotAuthorized):
		common.WriteAuthRequired(w)
	case likes.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", err.Error())
	default:
		handlers.WriteInternalError(w, "like", err)
	}
}
