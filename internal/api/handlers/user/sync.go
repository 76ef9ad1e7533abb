package user

import (
	"encoding/json"
	"net/http"

	"Lumen/internal/api/handlers/common"
	"Lumen/internal/api/middleware"
	"Lumen/internal/core/users"
)

// SyncHandler maintains the local user mirror
type SyncHandler struct {
	service users.Service
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(service users.Service) *SyncHandler {
	return &SyncHandler{service: service}
}

// SyncProfileInput is the request body for PUT /api/v1/users/me
type SyncProfileInput struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// HandleSync handles PUT /api/v1/users/me
// The caller pushes their current identity-service profile into the local
// mirror. The mirrored record ID is always the token subject; the body cannot
// index a profile for anyone else. Clients call this after signup and after
// profile edits so posts and follows can join fresh profile data.
func (h *SyncHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		common.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)
	var input SyncProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	indexed, err := h.service.IndexUser(r.Context(), &users.User{
		ID:        userID,
		FullName:  input.FullName,
		Username:  input.Username,
		AvatarURL: input.Avatar,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteSuccess(w, http.StatusOK, indexed, "Profile synced successfully")
}
