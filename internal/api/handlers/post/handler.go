package post

import (
	"net/http"

	"Parlor/internal/api/handlers/common"
	"Parlor/internal/api/middleware"
	"Parlor/internal/core/posts"

	"github.com/google/uuid"
)

// Handler serves the /api/posts endpoints
type Handler struct {
	service posts.Service
}

// NewHandler creates a new post handler
func NewHandler(service posts.Service) *Handler {
	return &Handler{service: service}
}

// createPostInput mirrors CreatePostRequest but lets us reject a client-supplied author
type createPostInput struct {
	AuthorID  *uuid.UUID `json:"authorId,omitempty"`
	Content   string     `json:"content"`
	MediaURLs []string   `json:"mediaUrls,omitempty"`
}

// HandleCreate handles POST /api/posts
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		common.WriteAuthRequired(w)
		return
	}

	var in createPostInput
	if !common.DecodeJSON(w, r, &in) {
		return
	}

	// SECURITY: the author is always the authenticated user
	if in.AuthorID != nil && *in.AuthorID != userID {
		writeError(w, http.StatusBadRequest, "InvalidRequest",
			"authorId must not be provided - derived from authenticated user")
		return
	}

	created, err := h.service.CreatePost(r.Context(), posts.CreatePostRequest{
		Content:   in.Content,
		MediaURLs: in.MediaURLs,
		AuthorID:  userID,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusCreated, created)
}

// HandleGet handles GET /api/posts/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := common.URLParamUUID(w, r, "id")
	if !ok {
		return
	}

	post, err := h.service.GetPost(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, post)
}

// HandleList handles GET /api/posts?limit=&offset=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit, offset := common.ParseLimitOffset(r)

	list, err := h.service.ListPosts(r.Context(), limit, offset)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, list)
}

// HandleListByAuthor handles GET /api/posts/user/{authorId}
func (h *Handler) HandleListByAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, ok := common.URLParamUUID(w, r, "authorId")
	if !ok {
		return
	}
	limit, offset := common.ParseLimitOffset(r)

	list, err := h.service.ListAuthorPosts(r.Context(), authorID, limit, offset)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, list)
}

// HandleUpdate handles PUT /api/posts/{id}
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

	var req posts.UpdatePostRequest
	if !common.DecodeJSON(w, r, &req) {
		return
	}

	updated, err := h.service.UpdatePost(r.Context(), userID, id, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, updated)
}

// HandleDelete handles DELETE /api/posts/{id}
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

	if err := h.service.DeletePost(r.Context(), userID, id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
