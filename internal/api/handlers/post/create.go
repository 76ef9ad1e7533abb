package post

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"Lumen/internal/api/handlers/common"
	"Lumen/internal/api/middleware"
	"Lumen/internal/core/posts"
)

// maxUploadBytes caps the multipart body. 15MB leaves headroom for the photo
// plus the caption field.
const maxUploadBytes = 15 << 20

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate handles POST /api/v1/posts
// Expects a multipart form with a "photo" file field and a "caption" field.
// The photo is staged to a local temp file which the service removes on both
// success and failure paths.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		common.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		common.WriteError(w, http.StatusBadRequest, "Invalid multipart request body")
		return
	}

	caption := r.FormValue("caption")
	if caption == "" {
		common.WriteError(w, http.StatusBadRequest, "caption is required")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "photo file is required")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Printf("Warning: failed to close uploaded photo: %v", closeErr)
		}
	}()

	localPath, err := stageUpload(file, header.Filename)
	if err != nil {
		log.Printf("Failed to stage photo upload: %v", err)
		common.WriteError(w, http.StatusInternalServerError, "Failed to process uploaded photo")
		return
	}

	view, err := h.service.CreatePost(r.Context(), posts.CreatePostRequest{
		Caption:        caption,
		LocalPhotoPath: localPath,
		OwnerID:        userID,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteSuccess(w, http.StatusCreated, view, "Post published successfully")
}

// stageUpload copies the multipart part to a local temp file and returns its
// path. The service layer owns removal of the staged file.
func stageUpload(file io.Reader, filename string) (string, error) {
	tmp, err := os.CreateTemp("", "lumen-upload-*"+filepath.Ext(filename))
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	return tmp.Name(), nil
}
