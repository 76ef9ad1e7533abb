package media

import "errors"

var (
	// ErrUploadFailed is returned when the media store rejects or fails an upload
	ErrUploadFailed = errors.New("media upload failed")

	// ErrDeleteFailed is returned when the media store fails to destroy an asset
	ErrDeleteFailed = errors.New("media delete failed")

	// ErrMissingFile is returned when Upload is called without a local file path
	ErrMissingFile = errors.New("local file path is required")

	// ErrMissingPublicID is returned when Destroy is called without a public ID
	ErrMissingPublicID = errors.New("public id is required")
)
