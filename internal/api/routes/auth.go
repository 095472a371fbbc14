package routes

import (
	"Parlor/internal/api/handlers/auth"
	"Parlor/internal/api/middleware"
	authCore "Parlor/internal/core/auth"

	"github.com/go-chi/chi/v5"
)

// RegisterAuthRoutes registers account and token endpoints under /auth
func RegisterAuthRoutes(r chi.Router, service authCore.Service, authMiddleware *middleware.JWTAuthMiddleware) {
	h := auth.NewHandler(service)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.HandleRegister)
		r.Post("/login", h.HandleLogin)
		r.Post("/refresh", h.HandleRefresh)
		r.Post("/forgot-password", h.HandleForgotPassword)
		r.Post("/reset-password", h.HandleResetPassword)

		// Logout revokes the caller's refresh token
		r.With(authMiddleware.RequireAuth).Post("/logout", h.HandleLogout)
	})
}
