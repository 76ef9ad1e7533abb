package users

import (
	"time"
)

// User is a read-side mirror of an account in the external identity service.
// Lumen never owns user records; they are indexed here so posts and follows
// can join public profile data without a network hop.
type User struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	ID        string    `json:"id" db:"id"`
	FullName  string    `json:"fullName" db:"full_name"`
	Username  string    `json:"username" db:"username"`
	AvatarURL string    `json:"avatar" db:"avatar_url"`
}

// Profile is the public projection exposed in follower/following lists and
// attached to posts as the owner view.
type Profile struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar"`
}

// Profile returns the public projection of the user.
func (u *User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		FullName:  u.FullName,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
	}
}
