package post

import (
	"errors"
	"log"
	"net/http"

	"Lumen/internal/api/handlers/common"
	"Lumen/internal/core/media"
	"Lumen/internal/core/posts"
)

// handleServiceError maps post service errors to envelope responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case posts.IsValidationError(err):
		common.WriteError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, posts.ErrNotFound):
		common.WriteError(w, http.StatusNotFound, "Post not found")

	case errors.Is(err, posts.ErrNotOwner):
		common.WriteError(w, http.StatusForbidden, "You are not the owner of this post")

	case errors.Is(err, posts.ErrOwnerNotFound):
		common.WriteError(w, http.StatusUnauthorized, "Unknown user")

	case errors.Is(err, media.ErrUploadFailed):
		log.Printf("Media upload failed in post handler: %v", err)
		common.WriteError(w, http.StatusInternalServerError, "Failed to upload photo")

	case errors.Is(err, media.ErrDeleteFailed):
		log.Printf("Media delete failed in post handler: %v", err)
		common.WriteError(w, http.StatusInternalServerError, "Failed to delete photo")

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in post handler: %v", err)
		common.WriteError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}
