// Package auth provides HTTP handlers for registration, login and password reset
package auth

import (
	"errors"
	"net/http"
	"strings"

	"Parlor/internal/api/handlers/common"
	"Parlor/internal/api/middleware"
	"Parlor/internal/core/auth"
	"Parlor/internal/core/users"

	"github.com/google/uuid"
)

// Handler serves the /api/auth endpoints
type Handler struct {
	service auth.Service
}

// NewHandler creates a new auth handler
func NewHandler(service auth.Service) *Handler {
	return &Handler{service: service}
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// HandleRegister handles POST /api/auth/register
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if !common.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusCreated, resp)
}

// HandleLogin handles POST /api/auth/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if !common.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, resp)
}

// HandleRefresh handles POST /api/auth/refresh
// The presented refresh token is rotated
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !common.DecodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.RefreshToken) == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "refreshToken is required")
		return
	}

	resp, err := h.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, resp)
}

// HandleLogout handles POST /api/auth/logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		common.WriteAuthRequired(w)
		return
	}

	if err := h.service.Logout(r.Context(), userID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleForgotPassword handles POST /api/auth/forgot-password
// Always answers 202 so the endpoint does not reveal which emails exist
func (h *Handler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if !common.DecodeJSON(w, r, &req) {
		return
	}

	if err := h.service.ForgotPassword(r.Context(), req.Email); err != nil && !errors.Is(err, users.ErrUserNotFound) {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusAccepted, map[string]string{
		"message": "If the email is registered, a reset link has been sent",
	})
}

// HandleResetPassword handles POST /api/auth/reset-password
func (h *Handler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ResetPasswordRequest
	if !common.DecodeJSON(w, r, &req) {
		return
	}

	if err := h.service.ResetPassword(r.Context(), req); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
