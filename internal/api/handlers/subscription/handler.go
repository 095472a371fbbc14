// Package subscription provides HTTP handlers for follow edges and follow requests
package subscription

import (
	"context"
	"net/http"

	"Parlor/internal/api/handlers/common"
	"Parlor/internal/api/middleware"
	"Parlor/internal/core/subscriptions"

	"github.com/google/uuid"
)

// Handler serves the /api/subscriptions endpoints
type Handler struct {
	service subscriptions.Service
}

// NewHandler creates a new subscription handler
func NewHandler(service subscriptions.Service) *Handler {
	return &Handler{service: service}
}

type subscribeInput struct {
	FollowingID uuid.UUID `json:"followingId"`
}

// HandleSubscribe handles POST /api/subscriptions
// Private targets receive a pending request
func (h *Handler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		common.WriteAuthRequired(w)
		return
	}

	var in subscribeInput
	if !common.DecodeJSON(w, r, &in) {
		return
	}

	sub, err := h.service.Subscribe(r.Context(), userID, in.FollowingID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusCreated, sub)
}

// HandleGet handles GET /api/subscriptions/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := common.URLParamUUID(w, r, "id")
	if !ok {
		return
	}

	sub, err := h.service.GetSubscription(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, sub)
}

// HandleFollowers handles GET /api/subscriptions/followers/{userId}?status=
func (h *Handler) HandleFollowers(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.URLParamUUID(w, r, "userId")
	if !ok {
		return
	}

	list, err := h.service.Followers(r.Context(), userID, subscriptions.Status(r.URL.Query().Get("status")))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, list)
}

// HandleFollowing handles GET /api/subscriptions/following/{userId}?status=
func (h *Handler) HandleFollowing(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.URLParamUUID(w, r, "userId")
	if !ok {
		return
	}

	list, err := h.service.Following(r.Context(), userID, subscriptions.Status(r.URL.Query().Get("status")))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, list)
}

// HandlePending handles GET /api/subscriptions/pending
// Lists follow requests awaiting the caller's approval
func (h *Handler) HandlePending(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		common.WriteAuthRequired(w)
		return
	}

	list, err := h.service.PendingRequests(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, list)
}

// HandleApprove handles POST /api/subscriptions/{id}/approve
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		common.WriteAuthRequired(w)
		return
	}

	id, ok := common.URLParamUUID(w, r, "id")
	if !ok {
		return
	}

	sub, err := h.service.Approve(r.Context(), userID, id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, sub)
}

// HandleReject handles POST /api/subscriptions/{id}/reject
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.deleteEdge(w, r, h.service.Reject)
}

// HandleUnsubscribe handles DELETE /api/subscriptions/{id}
func (h *Handler) HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	h.deleteEdge(w, r, h.service.Unsubscribe)
}

func (h *Handler) deleteEdge(w http.ResponseWriter, r *http.Request, remove func(ctx context.Context, actorID, id uuid.UUID) error) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		common.WriteAuthRequired(w)
		return
	}

	id, ok := common.URLParamUUID(w, r, "id")
	if !ok {
		return
	}

	if err := remove(r.Context(), userID, id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
