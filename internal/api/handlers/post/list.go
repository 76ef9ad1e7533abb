package post

import (
	"net/http"
	"strconv"
	"strings"

	"Lumen/internal/api/handlers/common"
	"Lumen/internal/core/posts"
)

// ListHandler handles post listing and search
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles GET /api/v1/posts
// Query parameters: page, limit, query, sortBy, sortType (asc|desc), userId.
// Non-numeric page/limit values are rejected rather than silently coerced.
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, ok := parsePositiveInt(q.Get("page"), 1)
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "page must be a positive integer")
		return
	}
	limit, ok := parsePositiveInt(q.Get("limit"), 10)
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	req := posts.ListPostsRequest{
		Page:          page,
		Limit:         limit,
		Query:         q.Get("query"),
		SortBy:        q.Get("sortBy"),
		SortAscending: strings.EqualFold(q.Get("sortType"), "asc"),
		OwnerID:       q.Get("userId"),
	}

	resp, err := h.service.ListPosts(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteSuccess(w, http.StatusOK, resp, "Posts fetched successfully")
}

// parsePositiveInt parses a query value, falling back to def when absent.
// Returns ok=false for non-numeric or non-positive values.
func parsePositiveInt(value string, def int) (int, bool) {
	if value == "" {
		return def, true
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
