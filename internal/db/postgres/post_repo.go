package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"Lumen/internal/core/posts"
	"Lumen/internal/core/users"

	"github.com/lib/pq"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post into the posts table
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (
			id, photo_public_id, photo_url, photo_kind,
			caption, is_published, owner_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(
		ctx, query,
		post.ID, post.PhotoPublicID, post.PhotoURL, post.PhotoKind,
		post.Caption, post.IsPublished, post.OwnerID,
	).Scan(&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return nil, fmt.Errorf("post owner %s: %w", post.OwnerID, posts.ErrOwnerNotFound)
		}
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return post, nil
}

// GetByID retrieves the raw post row, without the owner join
func (r *postgresPostRepo) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	post := &posts.Post{}
	query := `
		SELECT id, photo_public_id, photo_url, photo_kind,
		       caption, is_published, owner_id, created_at, updated_at
		FROM posts
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.PhotoPublicID, &post.PhotoURL, &post.PhotoKind,
		&post.Caption, &post.IsPublished, &post.OwnerID,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// GetViewByID retrieves a post joined with its owner profile.
// sql.ErrNoRows maps to posts.ErrNotFound so callers can tell an absent post
// from a failing query.
func (r *postgresPostRepo) GetViewByID(ctx context.Context, id string) (*posts.PostView, error) {
	query := `
		SELECT p.id, p.photo_url, p.caption, p.is_published,
		       p.created_at, p.updated_at,
		       u.id, u.full_name, u.username, u.avatar_url
		FROM posts p
		INNER JOIN users u ON p.owner_id = u.id
		WHERE p.id = $1`

	var view posts.PostView
	var owner users.Profile
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&view.ID, &view.Photo, &view.Caption, &view.IsPublished,
		&view.CreatedAt, &view.UpdatedAt,
		&owner.ID, &owner.FullName, &owner.Username, &owner.AvatarURL,
	)
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post view by id: %w", err)
	}

	view.Owner = &owner
	return &view, nil
}

// sortColumns whitelists the sortable columns. The service validates the sort
// field name, this map is the only place it is turned into SQL.
var sortColumns = map[string]string{
	posts.SortByCreatedAt:   "p.created_at",
	posts.SortByUpdatedAt:   "p.updated_at",
	posts.SortByCaption:     "p.caption",
	posts.SortByIsPublished: "p.is_published",
}

// List returns the filtered, sorted, paginated page plus the total match count
func (r *postgresPostRepo) List(ctx context.Context, req posts.ListPostsRequest) ([]*posts.PostView, int, error) {
	whereConditions := []string{"1=1"}
	args := []interface{}{}
	paramIndex := 1

	if req.Query != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("p.caption ILIKE $%d", paramIndex))
		args = append(args, "%"+escapeLike(req.Query)+"%")
		paramIndex++
	}

	if req.OwnerID != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("p.owner_id = $%d", paramIndex))
		args = append(args, req.OwnerID)
		paramIndex++
	}

	whereClause := strings.Join(whereConditions, " AND ")

	// Total count over the same filter, before pagination
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM posts p WHERE %s`, whereClause)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	orderColumn, ok := sortColumns[req.SortBy]
	if !ok {
		orderColumn = "p.created_at"
	}
	direction := "DESC"
	if req.SortAscending {
		direction = "ASC"
	}

	offset := (req.Page - 1) * req.Limit
	args = append(args, req.Limit, offset)

	query := fmt.Sprintf(`
		SELECT p.id, p.photo_url, p.caption, p.is_published,
		       p.created_at, p.updated_at,
		       u.id, u.full_name, u.username, u.avatar_url
		FROM posts p
		INNER JOIN users u ON p.owner_id = u.id
		WHERE %s
		ORDER BY %s %s, p.id %s
		LIMIT $%d OFFSET $%d`,
		whereClause, orderColumn, direction, direction, paramIndex, paramIndex+1)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query posts: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("WARN: failed to close rows: %v", err)
		}
	}()

	var views []*posts.PostView
	for rows.Next() {
		var view posts.PostView
		var owner users.Profile
		if err := rows.Scan(
			&view.ID, &view.Photo, &view.Caption, &view.IsPublished,
			&view.CreatedAt, &view.UpdatedAt,
			&owner.ID, &owner.FullName, &owner.Username, &owner.AvatarURL,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan post row: %w", err)
		}
		view.Owner = &owner
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating post rows: %w", err)
	}

	return views, total, nil
}

// UpdateCaption sets a new caption and bumps updated_at
func (r *postgresPostRepo) UpdateCaption(ctx context.Context, id, caption string) (*posts.Post, error) {
	post := &posts.Post{}
	query := `
		UPDATE posts
		SET caption = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, photo_public_id, photo_url, photo_kind,
		          caption, is_published, owner_id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, id, caption).Scan(
		&post.ID, &post.PhotoPublicID, &post.PhotoURL, &post.PhotoKind,
		&post.Caption, &post.IsPublished, &post.OwnerID,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post caption: %w", err)
	}

	return post, nil
}

// SetPublished sets the publish flag and bumps updated_at
func (r *postgresPostRepo) SetPublished(ctx context.Context, id string, published bool) (*posts.Post, error) {
	post := &posts.Post{}
	query := `
		UPDATE posts
		SET is_published = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, photo_public_id, photo_url, photo_kind,
		          caption, is_published, owner_id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, id, published).Scan(
		&post.ID, &post.PhotoPublicID, &post.PhotoURL, &post.PhotoKind,
		&post.Caption, &post.IsPublished, &post.OwnerID,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to set publish flag: %w", err)
	}

	return post, nil
}

// Delete removes the post row
func (r *postgresPostRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

// escapeLike escapes LIKE metacharacters so user queries match literally
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
