// Package like provides HTTP handlers for post likes
package like

import (
	"net/http"

	"Parlor/internal/api/handlers/common"
	"Parlor/internal/api/middleware"
	"Parlor/internal/core/likes"

	"github.com/google/uuid"
)

// Handler serves the /api/likes endpoints
type Handler struct {
	service likes.Service
}

// NewHandler creates a new like handler
func NewHandler(service likes.Service) *Handler {
	return &Handler{service: service}
}

type likeInput struct {
	PostID uuid.UUID `json:"postId"`
}

// HandleLike handles POST /api/likes
// 201 when the like is new, 200 when it already existed
func (h *Handler) HandleLike(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		common.WriteAuthRequired(w)
		return
	}

	var in likeInput
	if !common.DecodeJSON(w, r, &in) {
		return
	}

	created, err := h.service.Like(r.Context(), userID, in.PostID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	common.WriteJSON(w, r, status, map[string]any{"postId": in.PostID, "liked": true})
}

// HandleUnlike handles DELETE /api/likes/{postId}
// Removing a like that does not exist still answers 204
func (h *Handler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		common.WriteAuthRequired(w)
		return
	}

	postID, ok := common.URLParamUUID(w, r, "postId")
	if !ok {
		return
	}

	if _, err := h.service.Unlike(r.Context(), userID, postID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleListForPost handles GET /api/likes/post/{postId}?limit=&offset=
func (h *Handler) HandleListForPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := common.URLParamUUID(w, r, "postId")
	if !ok {
		return
	}
	limit, offset := common.ParseLimitOffset(r)

	list, err := h.service.ListForPost(r.Context(), postID, limit, offset)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, list)
}

// HandleCount handles GET /api/likes/post/{postId}/count
func (h *Handler) HandleCount(w http.ResponseWriter, r *http.Request) {
	postID, ok := common.URLParamUUID(w, r, "postId")
	if !ok {
		return
	}

	count, err := h.service.Count(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, map[string]any{"postId": postID, "count": count})
}

// HandleCheck handles GET /api/likes/check/{postId}
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

	liked, err := h.service.IsLiked(r.Context(), userID, postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, map[string]any{"postId": postID, "liked": liked})
}
