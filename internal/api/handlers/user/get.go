package user

import (
	"net/http"

	"Lumen/internal/api/handlers/common"
	"Lumen/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// GetHandler handles public profile lookups
type GetHandler struct {
	service users.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service users.Service) *GetHandler {
	return &GetHandler{service: service}
}

// HandleGet handles GET /api/v1/users/{userId}
// Returns the public profile projection, never the full mirror record.
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	u, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteSuccess(w, http.StatusOK, u.Profile(), "User fetched successfully")
}
