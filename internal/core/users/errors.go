package users

import (
	"errors"
	"fmt"
)

// ErrUserNotFound is returned when a user lookup finds no matching record
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameRequired is returned when indexing a profile with no username
var ErrUsernameRequired = errors.New("username is required")

// InvalidUserIDError is returned when a user ID does not meet format requirements
type InvalidUserIDError struct {
	ID     string
	Reason string
}

func (e *InvalidUserIDError) Error() string {
	return fmt.Sprintf("invalid user id %q: %s", e.ID, e.Reason)
}

// IsInvalidUserID checks if error is an invalid user ID error
func IsInvalidUserID(err error) bool {
	var invalidErr *InvalidUserIDError
	return errors.As(err, &invalidErr)
}
