// Package repost provides HTTP handlers for reposts
package repost

import (
	"net/http"

	"Parlor/internal/api/handlers/common"
	"Parlor/internal/api/middleware"
	"Parlor/internal/core/reposts"

	"github.com/google/uuid"
)

// Handler serves the /api/reposts endpoints
type Handler struct {
	service reposts.Service
}

// NewHandler creates a new repost handler
func NewHandler(service reposts.Service) *Handler {
	return &Handler{service: service}
}

// HandleRepost handles POST /api/reposts
func (h *Handler) HandleRepost(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		common.WriteAuthRequired(w)
		return
	}

	var req reposts.CreateRepostRequest
	if !common.DecodeJSON(w, r, &req) {
		return
	}

	repost, err := h.service.Repost(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusCreated, repost)
}

// HandleUnrepost handles DELETE /api/reposts/{postId}
func (h *Handler) HandleUnrepost(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		common.WriteAuthRequired(w)
		return
	}

	postID, ok := common.URLParamUUID(w, r, "postId")
	if !ok {
		return
	}

	if err := h.service.Unrepost(r.Context(), userID, postID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGet handles GET /api/reposts/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := common.URLParamUUID(w, r, "id")
	if !ok {
		return
	}

	repost, err := h.service.GetRepost(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, repost)
}

// HandleListByUser handles GET /api/reposts/user/{userId}
func (h *Handler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.URLParamUUID(w, r, "userId")
	if !ok {
		return
	}
	limit, offset := common.ParseLimitOffset(r)

	list, err := h.service.ListByUser(r.Context(), userID, limit, offset)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, list)
}

// HandleListByPost handles GET /api/reposts/post/{postId}
func (h *Handler) HandleListByPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := common.URLParamUUID(w, r, "postId")
	if !ok {
		return
	}
	limit, offset := common.ParseLimitOffset(r)

	list, err := h.service.ListByPost(r.Context(), postID, limit, offset)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, list)
}

// HandleCheck handles GET /api/reposts/check/{postId}
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

	reposted, err := h.service.HasReposted(r.Context(), userID, postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, map[string]any{"postId": postID, "reposted": reposted})
}

// HandleCount handles GET /api/reposts/count/{postId}
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
