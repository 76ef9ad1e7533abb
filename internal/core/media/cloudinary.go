package media

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type cloudinaryStore struct {
	client *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStore creates a media store backed by Cloudinary.
// The config must be validated by the caller before construction.
func NewCloudinaryStore(cfg Config) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid media config: %w", err)
	}

	client, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize media store client: %w", err)
	}

	return &cloudinaryStore{
		client: client,
		folder: cfg.UploadFolder,
	}, nil
}

// Upload sends a local file to Cloudinary.
// ResourceType "auto" lets the store detect the kind; the detected kind is
// returned so the caller can persist it next to the asset reference.
func (s *cloudinaryStore) Upload(ctx context.Context, localPath string) (*Asset, error) {
	if localPath == "" {
		return nil, ErrMissingFile
	}

	resp, err := s.client.Upload.Upload(ctx, localPath, uploader.UploadParams{
		Folder:       s.folder,
		ResourceType: "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("%w: %s", ErrUploadFailed, resp.Error.Message)
	}

	kind := resp.ResourceType
	if kind == "" {
		kind = KindImage
	}

	log.Printf("[MEDIA-UPLOAD] Uploaded asset: publicId=%s kind=%s", resp.PublicID, kind)

	return &Asset{
		PublicID: resp.PublicID,
		URL:      resp.SecureURL,
		Kind:     kind,
	}, nil
}

// Destroy removes an asset from Cloudinary using the kind recorded at upload.
func (s *cloudinaryStore) Destroy(ctx context.Context, publicID, kind string) error {
	if publicID == "" {
		return ErrMissingPublicID
	}
	if kind == "" {
		kind = KindImage
	}

	resp, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: kind,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	// Cloudinary reports the outcome in the Result field ("ok" or "not found").
	// "not found" is treated as success: the asset is already gone.
	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("%w: %s", ErrDeleteFailed, resp.Result)
	}

	log.Printf("[MEDIA-DELETE] Destroyed asset: publicId=%s kind=%s result=%s", publicID, kind, resp.Result)
	return nil
}
