// Package bookmark provides HTTP handlers for a user's private bookmarks
package bookmark

import (
	"net/http"

	"Parlor/internal/api/handlers/common"
	"Parlor/internal/api/middleware"
	"Parlor/internal/core/bookmarks"

	"github.com/google/uuid"
)

// Handler serves the /api/bookmarks endpoints. Every route requires auth.
type Handler struct {
	service bookmarks.Service
}

// NewHandler creates a new bookmark handler
func NewHandler(service bookmarks.Service) *Handler {
	return &Handler{service: service}
}

type addInput struct {
	PostID uuid.UUID `json:"postId"`
}

// HandleAdd handles POST /api/bookmarks
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		common.WriteAuthRequired(w)
		return
	}

	var in addInput
	if !common.DecodeJSON(w, r, &in) {
		return
	}

	bookmark, err := h.service.Add(r.Context(), userID, in.PostID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusCreated, bookmark)
}

// HandleRemove handles DELETE /api/bookmarks/{postId}
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		common.WriteAuthRequired(w)
		return
	}

	postID, ok := common.URLParamUUID(w, r, "postId")
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), userID, postID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleList handles GET /api/bookmarks
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		common.WriteAuthRequired(w)
		return
	}
	limit, offset := common.ParseLimitOffset(r)

	list, err := h.service.List(r.Context(), userID, limit, offset)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, list)
}

// HandleGet handles GET /api/bookmarks/{id}
// Another user's bookmark answers 404
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		common.WriteAuthRequired(w)
		return
	}

	id, ok := common.URLParamUUID(w, r, "id")
	if !ok {
		return
	}

	bookmark, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, bookmark)
}

// HandleCheck handles GET /api/bookmarks/check/{postId}
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		common.WriteAuthRequired(w)
		return
	}

	postID, ok := common.URLParamUUID(w, r, "postId")
	if !ok {
		return
	}

	saved, err := h.service.IsBookmarked(r.Context(), userID, postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, map[string]any{"postId": postID, "bookmarked": saved})
}
