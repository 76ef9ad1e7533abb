package user

import (
	"errors"
	"log"
	"net/http"

	"Lumen/internal/api/handlers/common"
	"Lumen/internal/core/users"
)

// handleServiceError maps user service errors to envelope responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case users.IsInvalidUserID(err), errors.Is(err, users.ErrUsernameRequired):
		common.WriteError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, users.ErrUserNotFound):
		common.WriteError(w, http.StatusNotFound, "User not found")

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in user handler: %v", err)
		common.WriteError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}
