package post

import (
	"net/http"

	"Lumen/internal/api/handlers/common"
	"Lumen/internal/api/middleware"
	"Lumen/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// TogglePublishHandler flips a post between published and unpublished
type TogglePublishHandler struct {
	service posts.Service
}

// NewTogglePublishHandler creates a new toggle publish handler
func NewTogglePublishHandler(service posts.Service) *TogglePublishHandler {
	return &TogglePublishHandler{service: service}
}

// HandleTogglePublish handles PATCH /api/v1/posts/toggle/publish/{postId}
// Only the post owner may toggle publish state.
func (h *TogglePublishHandler) HandleTogglePublish(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		common.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	postID := chi.URLParam(r, "postId")

	view, err := h.service.TogglePublish(r.Context(), postID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	message := "Post Unpublished Successfully"
	if view.IsPublished {
		message = "Post Published Successfully"
	}

	common.WriteSuccess(w, http.StatusOK, view, message)
}
