package routes

import (
	"Parlor/internal/api/handlers/subscription"
	"Parlor/internal/api/middleware"
	"Parlor/internal/core/subscriptions"

	"github.com/go-chi/chi/v5"
)

// RegisterSubscriptionRoutes registers follow graph endpoints under /subscriptions
func RegisterSubscriptionRoutes(r chi.Router, service subscriptions.Service, authMiddleware *middleware.JWTAuthMiddleware) {
	h := subscription.NewHandler(service)

	r.Route("/subscriptions", func(r chi.Router) {
		r.Get("/followers/{userId}", h.HandleFollowers)
		r.Get("/following/{userId}", h.HandleFollowing)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)
			r.Post("/", h.HandleSubscribe)
			r.Get("/pending", h.HandlePending)
			r.Get("/{id}", h.HandleGet)
			r.Post("/{id}/approve", h.HandleApprove)
			r.Post("/{id}/reject", h.HandleReject)
			r.Delete("/{id}", h.HandleUnsubscribe)
		})
	})
}
