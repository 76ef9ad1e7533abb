package post

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Lumen/internal/core/posts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPostService struct {
	listReq  posts.ListPostsRequest
	listResp *posts.ListPostsResponse
	listErr  error
}

func (s *stubPostService) CreatePost(ctx context.Context, req posts.CreatePostRequest) (*posts.PostView, error) {
	return nil, nil
}

func (s *stubPostService) ListPosts(ctx context.Context, req posts.ListPostsRequest) (*posts.ListPostsResponse, error) {
	s.listReq = req
	return s.listResp, s.listErr
}

func (s *stubPostService) GetPost(ctx context.Context, postID string) (*posts.PostView, error) {
	return nil, nil
}

func (s *stubPostService) UpdatePost(ctx context.Context, postID, caption, callerID string) (*posts.PostView, error) {
	return nil, nil
}

func (s *stubPostService) DeletePost(ctx context.Context, postID, callerID string) error {
	return nil
}

func (s *stubPostService) TogglePublish(ctx context.Context, postID, callerID string) (*posts.PostView, error) {
	return nil, nil
}

func TestHandleList_ForwardsQueryParams(t *testing.T) {
	service := &stubPostService{
		listResp: &posts.ListPostsResponse{Posts: []*posts.PostView{}, Page: 2, Limit: 5},
	}
	handler := NewListHandler(service)

	req := httptest.NewRequest(http.MethodGet,
		"/posts?page=2&limit=5&query=sunset&sortBy=createdAt&sortType=asc&userId=7b9f6a0e-3f65-4cbb-9c2e-5b2d2f8a1c01", nil)
	rec := httptest.NewRecorder()
	handler.HandleList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, service.listReq.Page)
	assert.Equal(t, 5, service.listReq.Limit)
	assert.Equal(t, "sunset", service.listReq.Query)
	assert.Equal(t, "createdAt", service.listReq.SortBy)
	assert.True(t, service.listReq.SortAscending)
	assert.Equal(t, "7b9f6a0e-3f65-4cbb-9c2e-5b2d2f8a1c01", service.listReq.OwnerID)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Posts fetched successfully", body["message"])
}

func TestHandleList_DefaultsWhenParamsAbsent(t *testing.T) {
	service := &stubPostService{
		listResp: &posts.ListPostsResponse{Posts: []*posts.PostView{}, Page: 1, Limit: 10},
	}
	handler := NewListHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	rec := httptest.NewRecorder()
	handler.HandleList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, service.listReq.Page)
	assert.Equal(t, 10, service.listReq.Limit)
	assert.False(t, service.listReq.SortAscending)
}

func TestHandleList_RejectsNonNumericPaging(t *testing.T) {
	for _, query := range []string{"page=abc", "limit=abc", "page=0", "limit=-1"} {
		t.Run(query, func(t *testing.T) {
			service := &stubPostService{}
			handler := NewListHandler(service)

			req := httptest.NewRequest(http.MethodGet, "/posts?"+query, nil)
			rec := httptest.NewRecorder()
			handler.HandleList(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleList_UnknownSortFieldIsBadRequest(t *testing.T) {
	service := &stubPostService{
		listErr: posts.NewValidationError("sortBy", "unknown sort field: likes"),
	}
	handler := NewListHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/posts?sortBy=likes", nil)
	rec := httptest.NewRecorder()
	handler.HandleList(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
