package follows

import (
	"context"

	"Lumen/internal/core/users"
)

// Service defines the business logic interface for follow edges
type Service interface {
	// ToggleFollow creates the follower->following edge when absent and
	// removes it when present. Self-follows are rejected.
	ToggleFollow(ctx context.Context, followerID, followingID string) (*ToggleResult, error)

	// ListFollowing returns the public profiles of everyone followerID
	// follows, newest edge first.
	ListFollowing(ctx context.Context, followerID string) ([]users.Profile, error)

	// ListFollowers returns the public profiles of everyone following
	// followingID. The caller must exist in the user mirror.
	ListFollowers(ctx context.Context, followingID, callerID string) ([]users.Profile, error)
}

// Repository defines the data access interface for follow edges
type Repository interface {
	// Get retrieves the edge for the pair. Returns ErrEdgeNotFound when absent.
	Get(ctx context.Context, followerID, followingID string) (*Follow, error)

	// Create inserts the edge. Returns ErrEdgeExists when the composite key
	// constraint fires (the pair is already followed).
	Create(ctx context.Context, follow *Follow) (*Follow, error)

	// Delete removes the edge. Returns ErrEdgeNotFound when nothing was deleted.
	Delete(ctx context.Context, followerID, followingID string) error

	// ListFollowing returns profiles of users followed by followerID,
	// newest edge first. Users missing from the mirror are dropped by the join.
	ListFollowing(ctx context.Context, followerID string) ([]users.Profile, error)

	// ListFollowers returns profiles of users following followingID,
	// newest edge first. Users missing from the mirror are dropped by the join.
	ListFollowers(ctx context.Context, followingID string) ([]users.Profile, error)
}
