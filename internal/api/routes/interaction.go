package routes

import (
	"Parlor/internal/api/handlers/bookmark"
	"Parlor/internal/api/handlers/like"
	"Parlor/internal/api/handlers/repost"
	"Parlor/internal/api/middleware"
	"Parlor/internal/core/bookmarks"
	"Parlor/internal/core/likes"
	"Parlor/internal/core/reposts"

	"github.com/go-chi/chi/v5"
)

// RegisterLikeRoutes registers like endpoints under /likes
func RegisterLikeRoutes(r chi.Router, service likes.Service, authMiddleware *middleware.JWTAuthMiddleware) {
	h := like.NewHandler(service)

	r.Route("/likes", func(r chi.Router) {
		r.Get("/post/{postId}", h.HandleListForPost)
		r.Get("/post/{postId}/count", h.HandleCount)

		r.With(authMiddleware.RequireAuth).Post("/", h.HandleLike)
		r.With(authMiddleware.RequireAuth).Delete("/{postId}", h.HandleUnlike)
		r.With(authMiddleware.RequireAuth).Get("/check/{postId}", h.HandleCheck)
	})
}

// RegisterRepostRoutes registers repost endpoints under /reposts
func RegisterRepostRoutes(r chi.Router, service reposts.Service, authMiddleware *middleware.JWTAuthMiddleware) {
	h := repost.NewHandler(service)

	r.Route("/reposts", func(r chi.Router) {
		r.Get("/user/{userId}", h.HandleListByUser)
		r.Get("/post/{postId}", h.HandleListByPost)
		r.Get("/count/{postId}", h.HandleCount)
		r.Get("/{id}", h.HandleGet)

		r.With(authMiddleware.RequireAuth).Post("/", h.HandleRepost)
		r.With(authMiddleware.RequireAuth).Delete("/{postId}", h.HandleUnrepost)
		r.With(authMiddleware.RequireAuth).Get("/check/{postId}", h.HandleCheck)
	})
}

// RegisterBookmarkRoutes registers bookmark endpoints under /bookmarks
// Bookmarks are private, so every route requires authentication
func RegisterBookmarkRoutes(r chi.Router, service bookmarks.Service, authMiddleware *middleware.JWTAuthMiddleware) {
	h := bookmark.NewHandler(service)

	r.Route("/bookmarks", func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)
		r.Post("/", h.HandleAdd)
		r.Get("/", h.HandleList)
		r.Get("/check/{postId}", h.HandleCheck)
		r.Get("/{id}", h.HandleGet)
		r.Delete("/{postId}", h.HandleRemove)
	})
}
