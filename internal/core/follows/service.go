package follows

import (
	"context"
	"errors"
	"fmt"
	"log"

	"Lumen/internal/core/users"
)

type followService struct {
	repo     Repository
	userRepo users.Repository
}

// NewFollowService creates a new follow service
func NewFollowService(repo Repository, userRepo users.Repository) Service {
	return &followService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// ToggleFollow flips the edge state for the pair.
// The insert-first strategy keeps concurrent toggles benign: whichever call
// loses an insert race observes ErrEdgeExists and treats the edge as present.
func (s *followService) ToggleFollow(ctx context.Context, followerID, followingID string) (*ToggleResult, error) {
	if err := validatePair(followerID, followingID); err != nil {
		return nil, err
	}
	if followerID == followingID {
		return nil, ErrSelfFollow
	}

	existing, err := s.repo.Get(ctx, followerID, followingID)
	if err != nil && !errors.Is(err, ErrEdgeNotFound) {
		return nil, fmt.Errorf("failed to look up follow edge: %w", err)
	}

	if existing == nil {
		created, err := s.repo.Create(ctx, &Follow{
			FollowerID:  followerID,
			FollowingID: followingID,
		})
		if err == nil {
			log.Printf("[FOLLOW-TOGGLE] %s followed %s", followerID, followingID)
			return &ToggleResult{Followed: true, Follow: created}, nil
		}
		if !errors.Is(err, ErrEdgeExists) {
			return nil, fmt.Errorf("failed to create follow edge: %w", err)
		}
		// Lost a race to a concurrent toggle; fall through and remove the edge.
	}

	if err := s.repo.Delete(ctx, followerID, followingID); err != nil {
		if errors.Is(err, ErrEdgeNotFound) {
			// Another concurrent toggle already removed it.
			return &ToggleResult{Followed: false}, nil
		}
		return nil, fmt.Errorf("failed to delete follow edge: %w", err)
	}

	log.Printf("[FOLLOW-TOGGLE] %s unfollowed %s", followerID, followingID)
	return &ToggleResult{Followed: false}, nil
}

// ListFollowing returns profiles of everyone the given user follows
func (s *followService) ListFollowing(ctx context.Context, followerID string) ([]users.Profile, error) {
	if err := users.ValidateUserID(followerID); err != nil {
		return nil, NewValidationError("followerId", "followerId must be a valid user id")
	}

	profiles, err := s.repo.ListFollowing(ctx, followerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list following for %s: %w", followerID, err)
	}
	if profiles == nil {
		profiles = []users.Profile{}
	}
	return profiles, nil
}

// ListFollowers returns profiles of everyone following the given user.
// The caller must have a user record; a token for a deleted account is rejected.
func (s *followService) ListFollowers(ctx context.Context, followingID, callerID string) ([]users.Profile, error) {
	if err := users.ValidateUserID(followingID); err != nil {
		return nil, NewValidationError("followingId", "followingId must be a valid user id")
	}
	if err := users.ValidateUserID(callerID); err != nil {
		return nil, NewValidationError("callerId", "caller must be a valid user id")
	}

	exists, err := s.userRepo.Exists(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify caller %s: %w", callerID, err)
	}
	if !exists {
		return nil, users.ErrUserNotFound
	}

	profiles, err := s.repo.ListFollowers(ctx, followingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followers for %s: %w", followingID, err)
	}
	if profiles == nil {
		profiles = []users.Profile{}
	}
	return profiles, nil
}

func validatePair(followerID, followingID string) error {
	if err := users.ValidateUserID(followerID); err != nil {
		return NewValidationError("followerId", "followerId must be a valid user id")
	}
	if err := users.ValidateUserID(followingID); err != nil {
		return NewValidationError("followingId", "followingId must be a valid user id")
	}
	return nil
}
