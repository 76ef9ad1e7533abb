package routes

import (
	"Lumen/internal/api/handlers/post"
	"Lumen/internal/api/middleware"
	"Lumen/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers post endpoints on the router.
// All post routes require authentication.
func RegisterPostRoutes(r chi.Router, service posts.Service, auth *middleware.AuthMiddleware) {
	createHandler := post.NewCreateHandler(service)
	listHandler := post.NewListHandler(service)
	getHandler := post.NewGetHandler(service)
	updateHandler := post.NewUpdateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)
	toggleHandler := post.NewTogglePublishHandler(service)

	r.Route("/posts", func(r chi.Router) {
		r.Use(auth.RequireAuth)

		r.Get("/", listHandler.HandleList)
		r.Post("/", createHandler.HandleCreate)

		// Registered before /{postId} so "toggle" is not captured as an id
		r.Patch("/toggle/publish/{postId}", toggleHandler.HandleTogglePublish)

		r.Get("/{postId}", getHandler.HandleGet)
		r.Patch("/{postId}", updateHandler.HandleUpdate)
		r.Delete("/{postId}", deleteHandler.HandleDelete)
	})
}
