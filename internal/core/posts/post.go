package posts

import (
	"time"

	"Lumen/internal/core/users"
)

// Post represents a photo post row as stored in the database.
// The photo columns reference an asset held by the external media store;
// they are always set together at creation and never mutated afterwards.
type Post struct {
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
	ID            string    `json:"id" db:"id"`
	PhotoPublicID string    `json:"-" db:"photo_public_id"`
	PhotoURL      string    `json:"photo" db:"photo_url"`
	PhotoKind     string    `json:"-" db:"photo_kind"`
	Caption       string    `json:"caption" db:"caption"`
	OwnerID       string    `json:"owner" db:"owner_id"`
	IsPublished   bool      `json:"isPublished" db:"is_published"`
}

// PostView is the API projection of a post: the photo is flattened to its URL
// and the owner is joined to a public profile.
type PostView struct {
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Owner       *users.Profile `json:"owner,omitempty"`
	ID          string         `json:"id"`
	Photo       string         `json:"photo"`
	Caption     string         `json:"caption"`
	IsPublished bool           `json:"isPublished"`
}

// CreatePostRequest represents input for creating a new post
type CreatePostRequest struct {
	// Caption is the required, non-empty post text.
	Caption string
	// LocalPhotoPath points at the temporary file staged by the upload handler.
	// The service removes it on both success and failure paths.
	LocalPhotoPath string
	// OwnerID is the authenticated caller, set by the handler from the token.
	OwnerID string
}

// Sort fields accepted by ListPosts. Anything else is rejected as invalid input.
const (
	SortByCreatedAt   = "createdAt"
	SortByUpdatedAt   = "updatedAt"
	SortByCaption     = "caption"
	SortByIsPublished = "isPublished"
)

// ListPostsRequest represents input for listing posts
type ListPostsRequest struct {
	// Query filters captions by case-insensitive substring match. Empty matches all.
	Query string
	// OwnerID restricts results to one owner. Empty means no owner filter.
	OwnerID string
	// SortBy is one of the SortBy* constants. Empty defaults to createdAt.
	SortBy string
	// SortAscending orders ascending when true; default is descending.
	SortAscending bool
	// Page is 1-based. Values below 1 default to 1.
	Page int
	// Limit is the page size. Values below 1 default to 10, capped at 100.
	Limit int
}

// ListPostsResponse is one page of posts plus the total match count
type ListPostsResponse struct {
	Posts      []*PostView `json:"posts"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalCount int         `json:"totalCount"`
	TotalPages int         `json:"totalPages"`
}
