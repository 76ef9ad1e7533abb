package follow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Lumen/internal/api/middleware"
	"Lumen/internal/core/follows"
	"Lumen/internal/core/users"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFollowService returns canned results so handler tests can focus on
// routing, auth plumbing, and the response envelope.
type stubFollowService struct {
	toggleResult *follows.ToggleResult
	toggleErr    error
	following    []users.Profile
	followers    []users.Profile
	err          error
}

func (s *stubFollowService) ToggleFollow(ctx context.Context, followerID, followingID string) (*follows.ToggleResult, error) {
	return s.toggleResult, s.toggleErr
}

func (s *stubFollowService) ListFollowing(ctx context.Context, followerID string) ([]users.Profile, error) {
	return s.following, s.err
}

func (s *stubFollowService) ListFollowers(ctx context.Context, followingID, callerID string) ([]users.Profile, error) {
	return s.followers, s.err
}

func doToggle(t *testing.T, service follows.Service, callerID string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewToggleHandler(service)

	r := chi.NewRouter()
	r.Post("/follow/{followingId}", handler.HandleToggle)

	req := httptest.NewRequest(http.MethodPost, "/follow/9d2c4e8a-1b3d-4f5a-8e6c-7a9b0c1d2e03", nil)
	if callerID != "" {
		req = req.WithContext(middleware.SetTestUserID(req.Context(), callerID))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleToggle_FollowMessage(t *testing.T) {
	service := &stubFollowService{
		toggleResult: &follows.ToggleResult{Followed: true},
	}

	rec := doToggle(t, service, "7b9f6a0e-3f65-4cbb-9c2e-5b2d2f8a1c01")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Followed successfully", body["message"])
	assert.Equal(t, true, body["success"])
}

func TestHandleToggle_UnfollowMessage(t *testing.T) {
	service := &stubFollowService{
		toggleResult: &follows.ToggleResult{Followed: false},
	}

	rec := doToggle(t, service, "7b9f6a0e-3f65-4cbb-9c2e-5b2d2f8a1c01")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Unfollowed successfully", body["message"])
}

func TestHandleToggle_RequiresAuthentication(t *testing.T) {
	rec := doToggle(t, &stubFollowService{}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleToggle_SelfFollowIsBadRequest(t *testing.T) {
	service := &stubFollowService{toggleErr: follows.ErrSelfFollow}

	rec := doToggle(t, service, "7b9f6a0e-3f65-4cbb-9c2e-5b2d2f8a1c01")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "You cannot follow yourself", body["message"])
}

func TestHandleToggle_UnknownTargetIsNotFound(t *testing.T) {
	service := &stubFollowService{toggleErr: users.ErrUserNotFound}

	rec := doToggle(t, service, "7b9f6a0e-3f65-4cbb-9c2e-5b2d2f8a1c01")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
