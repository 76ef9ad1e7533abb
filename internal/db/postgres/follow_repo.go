package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"Lumen/internal/core/follows"
	"Lumen/internal/core/users"

	"github.com/lib/pq"
)

type postgresFollowRepo struct {
	db *sql.DB
}

// NewFollowRepository creates a new PostgreSQL follow repository
func NewFollowRepository(db *sql.DB) follows.Repository {
	return &postgresFollowRepo{db: db}
}

// Get retrieves the edge for the pair
func (r *postgresFollowRepo) Get(ctx context.Context, followerID, followingID string) (*follows.Follow, error) {
	follow := &follows.Follow{}
	query := `
		SELECT follower_id, following_id, created_at
		FROM follows
		WHERE follower_id = $1 AND following_id = $2`

	err := r.db.QueryRowContext(ctx, query, followerID, followingID).
		Scan(&follow.FollowerID, &follow.FollowingID, &follow.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, follows.ErrEdgeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get follow edge: %w", err)
	}

	return follow, nil
}

// Create inserts the edge. The composite primary key turns a duplicate insert
// into ErrEdgeExists instead of a second row, which is what keeps concurrent
// toggles from corrupting state.
func (r *postgresFollowRepo) Create(ctx context.Context, follow *follows.Follow) (*follows.Follow, error) {
	query := `
		INSERT INTO follows (follower_id, following_id)
		VALUES ($1, $2)
		RETURNING follower_id, following_id, created_at`

	err := r.db.QueryRowContext(ctx, query, follow.FollowerID, follow.FollowingID).
		Scan(&follow.FollowerID, &follow.FollowingID, &follow.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code.Name() {
			case "unique_violation":
				return nil, follows.ErrEdgeExists
			case "foreign_key_violation":
				return nil, users.ErrUserNotFound
			}
		}
		return nil, fmt.Errorf("failed to create follow edge: %w", err)
	}

	return follow, nil
}

// Delete removes the edge
func (r *postgresFollowRepo) Delete(ctx context.Context, followerID, followingID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`,
		followerID, followingID)
	if err != nil {
		return fmt.Errorf("failed to delete follow edge: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return follows.ErrEdgeNotFound
	}

	return nil
}

// ListFollowing returns profiles of users followed by followerID.
// The inner join drops edges whose user record is gone from the mirror.
func (r *postgresFollowRepo) ListFollowing(ctx context.Context, followerID string) ([]users.Profile, error) {
	query := `
		SELECT u.id, u.full_name, u.username, u.avatar_url
		FROM follows f
		INNER JOIN users u ON f.following_id = u.id
		WHERE f.follower_id = $1
		ORDER BY f.created_at DESC`

	return r.queryProfiles(ctx, query, followerID)
}

// ListFollowers returns profiles of users following followingID
func (r *postgresFollowRepo) ListFollowers(ctx context.Context, followingID string) ([]users.Profile, error) {
	query := `
		SELECT u.id, u.full_name, u.username, u.avatar_url
		FROM follows f
		INNER JOIN users u ON f.follower_id = u.id
		WHERE f.following_id = $1
		ORDER BY f.created_at DESC`

	return r.queryProfiles(ctx, query, followingID)
}

func (r *postgresFollowRepo) queryProfiles(ctx context.Context, query string, arg string) ([]users.Profile, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query follow profiles: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("WARN: failed to close rows: %v", err)
		}
	}()

	var profiles []users.Profile
	for rows.Next() {
		var p users.Profile
		if err := rows.Scan(&p.ID, &p.FullName, &p.Username, &p.AvatarURL); err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", err)
	}

	return profiles, nil
}
