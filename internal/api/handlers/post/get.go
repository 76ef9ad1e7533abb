package post

import (
	"net/http"

	"Lumen/internal/api/handlers/common"
	"Lumen/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// GetHandler handles single-post retrieval
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{service: service}
}

// HandleGet handles GET /api/v1/posts/{postId}
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postId")

	view, err := h.service.GetPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteSuccess(w, http.StatusOK, view, "Post fetched successfully")
}
