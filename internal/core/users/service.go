package users

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type userService struct {
	repo Repository
}

// NewUserService creates a new user service
func NewUserService(repo Repository) Service {
	return &userService{repo: repo}
}

func (s *userService) GetUser(ctx context.Context, id string) (*User, error) {
	if err := ValidateUserID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *userService) IndexUser(ctx context.Context, user *User) (*User, error) {
	if err := ValidateUserID(user.ID); err != nil {
		return nil, err
	}
	if user.Username == "" {
		return nil, ErrUsernameRequired
	}
	indexed, err := s.repo.Upsert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to index user %s: %w", user.ID, err)
	}
	return indexed, nil
}

// ValidateUserID checks that an externally issued user ID is a well-formed UUID
func ValidateUserID(id string) error {
	if id == "" {
		return &InvalidUserIDError{ID: id, Reason: "must not be empty"}
	}
	if _, err := uuid.Parse(id); err != nil {
		return &InvalidUserIDError{ID: id, Reason: "must be a valid UUID"}
	}
	return nil
}
