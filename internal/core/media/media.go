package media

import "context"

// Resource kinds as reported by the media store at upload time.
// The kind is persisted alongside the asset reference so deletes never have
// to guess it from the URL.
const (
	KindImage = "image"
	KindVideo = "video"
	KindRaw   = "raw"
)

// Asset is the reference returned by the media store after an upload.
type Asset struct {
	// PublicID identifies the asset within the media store.
	PublicID string `json:"publicId"`
	// URL is the publicly servable location of the asset.
	URL string `json:"url"`
	// Kind is the resource kind ("image", "video", "raw").
	Kind string `json:"kind"`
}

// Store defines the interface for the hosted media service
type Store interface {
	// Upload sends the file at localPath to the media store and returns the
	// stored asset reference. The caller owns localPath cleanup.
	Upload(ctx context.Context, localPath string) (*Asset, error)

	// Destroy removes an asset from the media store.
	// kind must be the kind recorded at upload time.
	Destroy(ctx context.Context, publicID, kind string) error
}
