package posts

import "context"

// Service defines the business logic interface for posts
type Service interface {
	// CreatePost uploads the staged photo to the media store and persists the
	// post. The staged temp file is removed whether or not the upload succeeds.
	CreatePost(ctx context.Context, req CreatePostRequest) (*PostView, error)

	// ListPosts returns one page of posts matching the request filters,
	// joined with owner profiles. An empty page is not an error.
	ListPosts(ctx context.Context, req ListPostsRequest) (*ListPostsResponse, error)

	// GetPost returns a single post joined with its owner profile.
	// Returns ErrNotFound when the post does not exist.
	GetPost(ctx context.Context, postID string) (*PostView, error)

	// UpdatePost replaces the caption. Only the owner may update.
	UpdatePost(ctx context.Context, postID, caption, callerID string) (*PostView, error)

	// DeletePost removes the post record, then best-effort destroys its media.
	// Only the owner may delete. A failed media destroy is logged, not surfaced;
	// the orphaned asset is reclaimable by a later sweep.
	DeletePost(ctx context.Context, postID, callerID string) error

	// TogglePublish flips isPublished. Only the owner may toggle.
	TogglePublish(ctx context.Context, postID, callerID string) (*PostView, error)
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a new post and returns it with timestamps populated
	Create(ctx context.Context, post *Post) (*Post, error)

	// GetByID retrieves the raw post row, without the owner join.
	// Returns ErrNotFound when no row matches.
	GetByID(ctx context.Context, id string) (*Post, error)

	// GetViewByID retrieves a post joined with its owner profile.
	// Returns ErrNotFound when no row matches.
	GetViewByID(ctx context.Context, id string) (*PostView, error)

	// List returns the filtered, sorted, paginated page plus the total match count
	List(ctx context.Context, req ListPostsRequest) ([]*PostView, int, error)

	// UpdateCaption sets a new caption and bumps updated_at.
	// Returns ErrNotFound when no row matches.
	UpdateCaption(ctx context.Context, id, caption string) (*Post, error)

	// SetPublished sets the publish flag and bumps updated_at.
	// Returns ErrNotFound when no row matches.
	SetPublished(ctx context.Context, id string, published bool) (*Post, error)

	// Delete removes the post row. Returns ErrNotFound when no row matches.
	Delete(ctx context.Context, id string) error
}
