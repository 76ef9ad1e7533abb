package users

import "context"

// Repository defines the data access interface for the user mirror
type Repository interface {
	// GetByID retrieves a user by its ID
	// Returns ErrUserNotFound when no record matches
	GetByID(ctx context.Context, id string) (*User, error)

	// Exists reports whether a user record is present for the given ID
	Exists(ctx context.Context, id string) (bool, error)

	// Upsert creates or refreshes a mirrored user record.
	// Idempotent: calling it repeatedly with the same ID is safe.
	Upsert(ctx context.Context, user *User) (*User, error)
}

// Service defines the business logic interface for user lookups
type Service interface {
	// GetUser retrieves a user by ID after validating the ID format
	GetUser(ctx context.Context, id string) (*User, error)

	// IndexUser creates or updates a user in the local mirror.
	// Called when the identity service announces account changes.
	IndexUser(ctx context.Context, user *User) (*User, error)
}
