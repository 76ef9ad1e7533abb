package follow

import (
	"net/http"

	"Lumen/internal/api/handlers/common"
	"Lumen/internal/api/middleware"
	"Lumen/internal/core/follows"

	"github.com/go-chi/chi/v5"
)

// ToggleHandler handles follow/unfollow requests
type ToggleHandler struct {
	service follows.Service
}

// NewToggleHandler creates a new toggle handler
func NewToggleHandler(service follows.Service) *ToggleHandler {
	return &ToggleHandler{service: service}
}

// HandleToggle handles POST /api/v1/follow/{followingId}
// The follower is always the authenticated caller.
func (h *ToggleHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r)
	if callerID == "" {
		common.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	followingID := chi.URLParam(r, "followingId")

	result, err := h.service.ToggleFollow(r.Context(), callerID, followingID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	message := "Unfollowed successfully"
	if result.Followed {
		message = "Followed successfully"
	}

	common.WriteSuccess(w, http.StatusOK, result, message)
}
