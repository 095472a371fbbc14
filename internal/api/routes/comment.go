package routes

import (
	"Parlor/internal/api/handlers/comments"
	"Parlor/internal/api/middleware"
	commentsCore "Parlor/internal/core/comments"

	"github.com/go-chi/chi/v5"
)

// RegisterCommentRoutes registers comment endpoints under /comments
// All write operations (create, update, delete) require authentication
func RegisterCommentRoutes(r chi.Router, service commentsCore.Service, authMiddleware *middleware.JWTAuthMiddleware) {
	h := comments.NewHandler(service)

	r.Route("/comments", func(r chi.Router) {
		r.Get("/post/{postId}", h.HandleListByPost)
		r.Get("/post/{postId}/thread", h.HandleThread)
		r.Get("/user/{authorId}", h.HandleListByAuthor)
		r.Get("/{id}", h.HandleGet)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)
			r.Post("/", h.HandleCreate)
			r.Put("/{id}", h.HandleUpdate)
			r.Delete("/{id}", h.HandleDelete)
		})
	})
}
