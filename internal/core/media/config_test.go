package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{
		CloudName: "demo",
		APIKey:    "key-123",
		APISecret: "secret-456",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"missing cloud name", func(c *Config) { c.CloudName = "" }, ErrMissingCloudName},
		{"missing api key", func(c *Config) { c.APIKey = "" }, ErrMissingAPIKey},
		{"missing api secret", func(c *Config) { c.APISecret = "" }, ErrMissingAPISecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "key-123")
	t.Setenv("CLOUDINARY_API_SECRET", "secret-456")
	t.Setenv("CLOUDINARY_UPLOAD_FOLDER", "lumen")

	cfg := ConfigFromEnv()
	assert.Equal(t, "demo", cfg.CloudName)
	assert.Equal(t, "key-123", cfg.APIKey)
	assert.Equal(t, "secret-456", cfg.APISecret)
	assert.Equal(t, "lumen", cfg.UploadFolder)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnv_FolderIsOptional(t *testing.T) {
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "key-123")
	t.Setenv("CLOUDINARY_API_SECRET", "secret-456")
	t.Setenv("CLOUDINARY_UPLOAD_FOLDER", "")

	cfg := ConfigFromEnv()
	assert.Empty(t, cfg.UploadFolder)
	assert.NoError(t, cfg.Validate())
}
