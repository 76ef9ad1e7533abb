package posts

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"Lumen/internal/api/middleware"
	"Lumen/internal/core/media"
	"Lumen/internal/core/users"

	"github.com/google/uuid"
)

type postService struct {
	repo       Repository
	userRepo   users.Repository
	mediaStore media.Store
}

// NewPostService creates a new post service
func NewPostService(repo Repository, userRepo users.Repository, mediaStore media.Store) Service {
	return &postService{
		repo:       repo,
		userRepo:   userRepo,
		mediaStore: mediaStore,
	}
}

// CreatePost creates a new photo post
// Flow:
// 1. Validate input
// 2. Verify the owner exists in the user mirror
// 3. Upload the staged photo to the media store
// 4. Persist the post referencing the returned asset
// The staged temp file is removed on every exit path.
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*PostView, error) {
	if req.LocalPhotoPath != "" {
		defer func() {
			if err := os.Remove(req.LocalPhotoPath); err != nil && !os.IsNotExist(err) {
				log.Printf("[POST-CREATE] Warning: failed to remove temp file %s: %v", req.LocalPhotoPath, err)
			}
		}()
	}

	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	// Defense in depth: verify the service layer receives the caller identity
	// the auth middleware established, even if a handler is bypassed.
	if authenticatedID := middleware.GetAuthenticatedUserID(ctx); authenticatedID != "" && authenticatedID != req.OwnerID {
		log.Printf("[SECURITY] owner mismatch: authenticated=%s, request=%s", authenticatedID, req.OwnerID)
		return nil, fmt.Errorf("authenticated user does not match post owner")
	}

	owner, err := s.userRepo.GetByID(ctx, req.OwnerID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to look up post owner: %w", err)
	}

	asset, err := s.mediaStore.Upload(ctx, req.LocalPhotoPath)
	if err != nil {
		if errors.Is(err, media.ErrUploadFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", media.ErrUploadFailed, err)
	}

	post := &Post{
		ID:            uuid.NewString(),
		PhotoPublicID: asset.PublicID,
		PhotoURL:      asset.URL,
		PhotoKind:     asset.Kind,
		Caption:       req.Caption,
		OwnerID:       req.OwnerID,
		IsPublished:   true,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to persist post: %w", err)
	}

	log.Printf("[POST-CREATE] Owner: %s, Post: %s, Asset: %s", req.OwnerID, created.ID, asset.PublicID)

	ownerProfile := owner.Profile()
	return &PostView{
		ID:          created.ID,
		Photo:       created.PhotoURL,
		Caption:     created.Caption,
		IsPublished: created.IsPublished,
		Owner:       &ownerProfile,
		CreatedAt:   created.CreatedAt,
		UpdatedAt:   created.UpdatedAt,
	}, nil
}

func (s *postService) validateCreateRequest(req CreatePostRequest) error {
	const maxCaptionLength = 2200

	if req.Caption == "" {
		return NewValidationError("caption", "caption is required")
	}
	if len(req.Caption) > maxCaptionLength {
		return NewValidationError("caption",
			fmt.Sprintf("caption too long (max %d characters)", maxCaptionLength))
	}
	if req.LocalPhotoPath == "" {
		return NewValidationError("photo", "photo file is required")
	}
	if err := users.ValidateUserID(req.OwnerID); err != nil {
		return NewValidationError("owner", "owner must be a valid user id")
	}
	return nil
}

// ListPosts returns one page of posts matching the request filters
func (s *postService) ListPosts(ctx context.Context, req ListPostsRequest) (*ListPostsResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = 10
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	switch req.SortBy {
	case "":
		req.SortBy = SortByCreatedAt
	case SortByCreatedAt, SortByUpdatedAt, SortByCaption, SortByIsPublished:
	default:
		return nil, NewValidationError("sortBy",
			fmt.Sprintf("unknown sort field: %s", req.SortBy))
	}

	if req.OwnerID != "" {
		if err := users.ValidateUserID(req.OwnerID); err != nil {
			return nil, NewValidationError("userId", "userId must be a valid user id")
		}
	}

	views, total, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	// An empty page is a valid result, not an error
	if views == nil {
		views = []*PostView{}
	}

	totalPages := total / req.Limit
	if total%req.Limit != 0 {
		totalPages++
	}

	return &ListPostsResponse{
		Posts:      views,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalCount: total,
		TotalPages: totalPages,
	}, nil
}

// GetPost returns a single post joined with its owner profile.
// An empty query result is ErrNotFound; only a failing query is internal.
func (s *postService) GetPost(ctx context.Context, postID string) (*PostView, error) {
	if err := validatePostID(postID); err != nil {
		return nil, err
	}

	view, err := s.repo.GetViewByID(ctx, postID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post %s: %w", postID, err)
	}
	return view, nil
}

// UpdatePost replaces the caption of an existing post owned by the caller
func (s *postService) UpdatePost(ctx context.Context, postID, caption, callerID string) (*PostView, error) {
	if err := validatePostID(postID); err != nil {
		return nil, err
	}
	if caption == "" {
		return nil, NewValidationError("caption", "caption is required")
	}

	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.OwnerID != callerID {
		return nil, ErrNotOwner
	}

	if _, err := s.repo.UpdateCaption(ctx, postID, caption); err != nil {
		return nil, fmt.Errorf("failed to update post %s: %w", postID, err)
	}

	return s.repo.GetViewByID(ctx, postID)
}

// DeletePost removes the post record first, then best-effort destroys the
// media asset. Orphaned assets left by a failed destroy are reclaimable by a
// separate sweep; the request itself never fails on the media step.
func (s *postService) DeletePost(ctx context.Context, postID, callerID string) error {
	if err := validatePostID(postID); err != nil {
		return err
	}

	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.OwnerID != callerID {
		return ErrNotOwner
	}

	if err := s.repo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post %s: %w", postID, err)
	}

	if err := s.mediaStore.Destroy(ctx, post.PhotoPublicID, post.PhotoKind); err != nil {
		log.Printf("[POST-DELETE] Warning: orphaned media asset %s (kind=%s): %v",
			post.PhotoPublicID, post.PhotoKind, err)
	}

	log.Printf("[POST-DELETE] Owner: %s, Post: %s", callerID, postID)
	return nil
}

// TogglePublish flips the publish flag of a post owned by the caller
func (s *postService) TogglePublish(ctx context.Context, postID, callerID string) (*PostView, error) {
	if err := validatePostID(postID); err != nil {
		return nil, err
	}

	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.OwnerID != callerID {
		return nil, ErrNotOwner
	}

	if _, err := s.repo.SetPublished(ctx, postID, !post.IsPublished); err != nil {
		return nil, fmt.Errorf("failed to toggle publish on post %s: %w", postID, err)
	}

	return s.repo.GetViewByID(ctx, postID)
}

func validatePostID(id string) error {
	if id == "" {
		return NewValidationError("postId", "postId is required")
	}
	if _, err := uuid.Parse(id); err != nil {
		return NewValidationError("postId", "postId must be a valid id")
	}
	return nil
}
