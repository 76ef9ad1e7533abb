package follow

import (
	"errors"
	"log"
	"net/http"

	"Lumen/internal/api/handlers/common"
	"Lumen/internal/core/follows"
	"Lumen/internal/core/users"
)

// handleServiceError maps follow service errors to envelope responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case follows.IsValidationError(err), users.IsInvalidUserID(err):
		common.WriteError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, follows.ErrSelfFollow):
		common.WriteError(w, http.StatusBadRequest, "You cannot follow yourself")

	case errors.Is(err, users.ErrUserNotFound):
		common.WriteError(w, http.StatusNotFound, "User not found")

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in follow handler: %v", err)
		common.WriteError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}
