package post

import (
	"encoding/json"
	"net/http"

	"Lumen/internal/api/handlers/common"
	"Lumen/internal/api/middleware"
	"Lumen/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// UpdateHandler handles caption updates
type UpdateHandler struct {
	service posts.Service
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(service posts.Service) *UpdateHandler {
	return &UpdateHandler{service: service}
}

// UpdatePostInput is the request body for PATCH /api/v1/posts/{postId}
type UpdatePostInput struct {
	Caption string `json:"caption"`
}

// HandleUpdate handles PATCH /api/v1/posts/{postId}
// Only the caption can change; the photo is immutable after creation.
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		common.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	postID := chi.URLParam(r, "postId")

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)
	var input UpdatePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	view, err := h.service.UpdatePost(r.Context(), postID, input.Caption, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteSuccess(w, http.StatusOK, view, "Post updated successfully")
}
