package user

import (
	"net/http"

	"Parlor/internal/api/handlers/common"
	"Parlor/internal/api/middleware"
	"Parlor/internal/core/users"

	"github.com/google/uuid"
)

// Handler serves the /api/users endpoints
type Handler struct {
	service users.UserService
}

// NewHandler creates a new user handler
func NewHandler(service users.UserService) *Handler {
	return &Handler{service: service}
}

// HandleList handles GET /api/users?limit=&offset=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit, offset := common.ParseLimitOffset(r)

	list, err := h.service.ListUsers(r.Context(), limit, offset)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, list)
}

// HandleGet handles GET /api/users/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := common.URLParamUUID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.service.GetUserByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, user)
}

// HandleGetProfile handles GET /api/users/{id}/profile
func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := common.URLParamUUID(w, r, "id")
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, profile)
}

// HandleUpdate handles PUT /api/users/{id}
// Only the account owner may update the profile
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserID(r)
	if actorID == uuid.Nil {
		common.WriteAuthRequired(w)
		return
	}

	id, ok := common.URLParamUUID(w, r, "id")
	if !ok {
		return
	}

	var req users.UpdateProfileRequest
	if !common.DecodeJSON(w, r, &req) {
		return
	}

	updated, err := h.service.UpdateProfile(r.Context(), actorID, id, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, updated)
}

// HandleDelete handles DELETE /api/users/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserID(r)
	if actorID == uuid.Nil {
		common.WriteAuthRequired(w)
		return
	}

	id, ok := common.URLParamUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteAccount(r.Context(), actorID, id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
