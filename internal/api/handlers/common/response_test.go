package common

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, 201, map[string]string{"id": "abc"}, "Created")

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, 201, env.StatusCode)
	assert.Equal(t, "Created", env.Message)
	assert.True(t, env.Success)
	assert.NotNil(t, env.Data)
}

func TestWriteError_OmitsData(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, 404, "Post not found")

	assert.Equal(t, 404, rec.Code)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, "Post not found", raw["message"])
	assert.Equal(t, false, raw["success"])
	assert.Equal(t, float64(404), raw["statusCode"])

	// Error envelopes never carry a data field, not even a null one
	_, hasData := raw["data"]
	assert.False(t, hasData)
}
