// Package comments provides HTTP handlers for threaded comments on posts
package comments

import (
	"net/http"

	"Parlor/internal/api/handlers/common"
	"Parlor/internal/api/middleware"
	"Parlor/internal/core/comments"

	"github.com/google/uuid"
)

// Handler serves the /api/comments endpoints
type Handler struct {
	service comments.Service
}

// NewHandler creates a new comment handler
func NewHandler(service comments.Service) *Handler {
	return &Handler{service: service}
}

// HandleCreate handles POST /api/comments
// Body: {"postId": "...", "parentCommentId": "...", "content": "..."}
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		common.WriteAuthRequired(w)
		return
	}

	var req comments.CreateCommentRequest
	if !common.DecodeJSON(w, r, &req) {
		return
	}
	if req.PostID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "postId is required")
		return
	}
	req.AuthorID = userID

	created, err := h.service.CreateComment(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusCreated, created)
}

// HandleGet handles GET /api/comments/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := common.URLParamUUID(w, r, "id")
	if !ok {
		return
	}

	comment, err := h.service.GetComment(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, comment)
}

// HandleListByPost handles GET /api/comments/post/{postId}
// Flat list, oldest first
func (h *Handler) HandleListByPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := common.URLParamUUID(w, r, "postId")
	if !ok {
		return
	}

	list, err := h.service.ListPostComments(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, list)
}

// HandleThread handles GET /api/comments/post/{postId}/thread
func (h *Handler) HandleThread(w http.ResponseWriter, r *http.Request) {
	postID, ok := common.URLParamUUID(w, r, "postId")
	if !ok {
		return
	}

	thread, err := h.service.GetThread(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, thread)
}

// HandleListByAuthor handles GET /api/comments/user/{authorId}?limit=&offset=
func (h *Handler) HandleListByAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, ok := common.URLParamUUID(w, r, "authorId")
	if !ok {
		return
	}
	limit, offset := common.ParseLimitOffset(r)

	list, err := h.service.ListAuthorComments(r.Context(), authorID, limit, offset)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, list)
}

// HandleUpdate handles PUT /api/comments/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		common.WriteAuthRequired(w)
		return
	}

	id, ok := common.URLParamUUID(w, r, "id")
	if !ok {
		return
	}

	var req comments.UpdateCommentRequest
	if !common.DecodeJSON(w, r, &req) {
		return
	}

	updated, err := h.service.UpdateComment(r.Context(), userID, id, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, updated)
}

// HandleDelete handles DELETE /api/comments/{id}
// Replies are removed with the comment
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		common.WriteAuthRequired(w)
		return
	}

	id, ok := common.URLParamUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteComment(r.Context(), userID, id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
