package routes

import (
	"Parlor/internal/api/handlers/user"
	"Parlor/internal/api/middleware"
	"Parlor/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// RegisterUserRoutes registers user and profile endpoints under /users
// Reads are public; updates and deletes are restricted to the account owner
func RegisterUserRoutes(r chi.Router, service users.UserService, authMiddleware *middleware.JWTAuthMiddleware) {
	h := user.NewHandler(service)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Get("/{id}", h.HandleGet)
		r.Get("/{id}/profile", h.HandleGetProfile)

		r.With(authMiddleware.RequireAuth).Put("/{id}", h.HandleUpdate)
		r.With(authMiddleware.RequireAuth).Delete("/{id}", h.HandleDelete)
	})
}
