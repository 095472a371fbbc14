package routes

import (
	"Parlor/internal/api/handlers/feed"
	"Parlor/internal/api/middleware"
	"Parlor/internal/core/newsfeed"

	"github.com/go-chi/chi/v5"
)

// RegisterFeedRoutes registers news feed endpoints under /feed
// The personal feed needs a viewer; global and user feeds accept anonymous readers
func RegisterFeedRoutes(r chi.Router, service newsfeed.Service, authMiddleware *middleware.JWTAuthMiddleware) {
	h := feed.NewGetFeedHandler(service)

	r.Route("/feed", func(r chi.Router) {
		r.With(authMiddleware.RequireAuth).Get("/personal", h.HandlePersonal)
		r.Get("/global", h.HandleGlobal)
		r.Get("/user/{targetUserId}", h.HandleUser)
	})
}
