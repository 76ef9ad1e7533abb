package follow

import (
	"net/http"

	"Lumen/internal/api/handlers/common"
	"Lumen/internal/api/middleware"
	"Lumen/internal/core/follows"

	"github.com/go-chi/chi/v5"
)

// ListHandler handles follower/following listing
type ListHandler struct {
	service follows.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service follows.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleListFollowing handles GET /api/v1/follow/following/{followerId}
// Returns the public profiles of everyone {followerId} follows.
func (h *ListHandler) HandleListFollowing(w http.ResponseWriter, r *http.Request) {
	if middleware.GetUserID(r) == "" {
		common.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	followerID := chi.URLParam(r, "followerId")

	profiles, err := h.service.ListFollowing(r.Context(), followerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteSuccess(w, http.StatusOK, profiles, "Following list fetched successfully")
}

// HandleListFollowers handles GET /api/v1/follow/followers/{followingId}
// Returns the public profiles of everyone following {followingId}.
func (h *ListHandler) HandleListFollowers(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r)
	if callerID == "" {
		common.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	followingID := chi.URLParam(r, "followingId")

	profiles, err := h.service.ListFollowers(r.Context(), followingID, callerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteSuccess(w, http.StatusOK, profiles, "Followers list fetched successfully")
}
