package routes

import (
	"Parlor/internal/api/handlers/post"
	"Parlor/internal/api/middleware"
	"Parlor/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers post endpoints under /posts
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.JWTAuthMiddleware) {
	h := post.NewHandler(service)

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Get("/user/{authorId}", h.HandleListByAuthor)
		r.Get("/{id}", h.HandleGet)

		// Only post authors can update or delete their own posts
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)
			r.Post("/", h.HandleCreate)
			r.Put("/{id}", h.HandleUpdate)
			r.Delete("/{id}", h.HandleDelete)
		})
	})
}
