package routes

import (
	"Lumen/internal/api/handlers/follow"
	"Lumen/internal/api/middleware"
	"Lumen/internal/core/follows"

	"github.com/go-chi/chi/v5"
)

// RegisterFollowRoutes registers follow endpoints on the router.
// All follow routes require authentication.
func RegisterFollowRoutes(r chi.Router, service follows.Service, auth *middleware.AuthMiddleware) {
	toggleHandler := follow.NewToggleHandler(service)
	listHandler := follow.NewListHandler(service)

	r.Route("/follow", func(r chi.Router) {
		r.Use(auth.RequireAuth)

		r.Get("/following/{followerId}", listHandler.HandleListFollowing)
		r.Get("/followers/{followingId}", listHandler.HandleListFollowers)
		r.Post("/{followingId}", toggleHandler.HandleToggle)
	})
}
