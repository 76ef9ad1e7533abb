package media

import (
	"errors"
	"os"
)

// Config validation errors
var (
	// ErrMissingCloudName is returned when CloudName is empty
	ErrMissingCloudName = errors.New("CloudName is required")
	// ErrMissingAPIKey is returned when APIKey is empty
	ErrMissingAPIKey = errors.New("APIKey is required")
	// ErrMissingAPISecret is returned when APISecret is empty
	ErrMissingAPISecret = errors.New("APISecret is required")
)

// Config holds the credentials for the hosted media store.
// It is constructed explicitly at startup and injected into the store;
// nothing in this package reads ambient global state.
type Config struct {
	// CloudName is the media store account identifier.
	CloudName string

	// APIKey is the media store API key.
	APIKey string

	// APISecret is the media store API secret.
	APISecret string

	// UploadFolder is an optional folder prefix for uploaded assets.
	UploadFolder string
}

// Validate checks the configuration for missing required values.
func (c Config) Validate() error {
	if c.CloudName == "" {
		return ErrMissingCloudName
	}
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.APISecret == "" {
		return ErrMissingAPISecret
	}
	return nil
}

// ConfigFromEnv creates a Config from environment variables.
//
// Environment variables:
//   - CLOUDINARY_CLOUD_NAME: media store account name
//   - CLOUDINARY_API_KEY: API key
//   - CLOUDINARY_API_SECRET: API secret
//   - CLOUDINARY_UPLOAD_FOLDER: optional folder prefix (default: "")
func ConfigFromEnv() Config {
	return Config{
		CloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		APIKey:       os.Getenv("CLOUDINARY_API_KEY"),
		APISecret:    os.Getenv("CLOUDINARY_API_SECRET"),
		UploadFolder: os.Getenv("CLOUDINARY_UPLOAD_FOLDER"),
	}
}
