package follows

import (
	"time"
)

// Follow is a directed edge: follower follows following.
// The storage layer enforces at most one edge per pair with a composite
// primary key, so concurrent toggles cannot produce duplicates.
type Follow struct {
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	FollowerID  string    `json:"followerId" db:"follower_id"`
	FollowingID string    `json:"followingId" db:"following_id"`
}

// ToggleResult reports the state the edge ended up in after a toggle
type ToggleResult struct {
	Follow *Follow `json:"follow,omitempty"`
	// Followed is true when the toggle created the edge, false when it removed it
	Followed bool `json:"followed"`
}
