package routes

import (
	"Lumen/internal/api/handlers/user"
	"Lumen/internal/api/middleware"
	"Lumen/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// RegisterUserRoutes registers user mirror endpoints on the router.
// All user routes require authentication.
func RegisterUserRoutes(r chi.Router, service users.Service, auth *middleware.AuthMiddleware) {
	syncHandler := user.NewSyncHandler(service)
	getHandler := user.NewGetHandler(service)

	r.Route("/users", func(r chi.Router) {
		r.Use(auth.RequireAuth)

		// /me before the wildcard so it never matches as a userId
		r.Put("/me", syncHandler.HandleSync)
		r.Get("/{userId}", getHandler.HandleGet)
	})
}
