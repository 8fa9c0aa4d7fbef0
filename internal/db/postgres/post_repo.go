package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"postboard/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// postColumns is the column list shared by every query that scans a
// full post row.
const postColumns = `id, title, text, image, author, tags, liked_by, created_at, updated_at`

// Create inserts a new post, assigning its id and timestamps
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}

	query := `
		INSERT INTO posts (id, title, text, image, author, tags, liked_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		post.ID, post.Title, post.Text, nullString(post.Image), post.Author,
		pq.Array(post.Tags), pq.Array(post.LikedBy),
	).Scan(&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return fmt.Errorf("post id already exists: %s", post.ID)
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// GetByID retrieves a post by its id
func (r *postgresPostRepo) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	// An id that is not a UUID cannot reference any post; treat it as
	// absent rather than letting the driver surface a syntax error.
	if _, err := uuid.Parse(id); err != nil {
		return nil, posts.ErrNotFound
	}

	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// Update persists the post's content fields. The author column is
// never written after creation.
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) error {
	query := `
		UPDATE posts
		SET title = $2, text = $3, image = $4, tags = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		post.ID, post.Title, post.Text, nullString(post.Image), pq.Array(post.Tags),
	).Scan(&post.UpdatedAt)
	if err == sql.ErrNoRows {
		return posts.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	return nil
}

// Delete permanently removes a post
func (r *postgresPostRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

// List returns posts matching the filter ordered by recency, plus the
// total match count before slicing
func (r *postgresPostRepo) List(ctx context.Context, filter posts.ListFilter, limit, offset int) ([]*posts.Post, int, error) {
	whereConditions := []string{"TRUE"}
	args := []interface{}{}
	paramIndex := 1

	if filter.Author != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("author = $%d", paramIndex))
		args = append(args, filter.Author)
		paramIndex++
	}

	if len(filter.Tags) > 0 {
		// && is the array overlap operator: any shared tag matches
		whereConditions = append(whereConditions, fmt.Sprintf("tags && $%d", paramIndex))
		args = append(args, pq.Array(filter.Tags))
		paramIndex++
	}

	whereClause := strings.Join(whereConditions, " AND ")

	// Total reflects the unsliced match count for the same filter
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM posts WHERE %s`, whereClause)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+postColumns+`
		FROM posts
		WHERE %s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, paramIndex, paramIndex+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query posts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*posts.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		results = append(results, post)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating posts: %w", err)
	}

	return results, total, nil
}

// AddLiker adds userID to the post's liker set in a single conditional
// statement, so concurrent likes from different users cannot lose
// updates. When the user already liked the post the statement matches
// no row and the current post is returned unchanged.
func (r *postgresPostRepo) AddLiker(ctx context.Context, id, userID string) (*posts.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, posts.ErrNotFound
	}

	query := `
		UPDATE posts
		SET liked_by = array_append(liked_by, $2), updated_at = NOW()
		WHERE id = $1 AND NOT ($2 = ANY(liked_by))
		RETURNING ` + postColumns

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id, userID))
	if err == sql.ErrNoRows {
		// Either the post is gone or the like was already present;
		// GetByID distinguishes the two.
		return r.GetByID(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to add liker: %w", err)
	}

	return post, nil
}

// RemoveLiker removes userID from the post's liker set atomically
func (r *postgresPostRepo) RemoveLiker(ctx context.Context, id, userID string) (*posts.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, posts.ErrNotFound
	}

	query := `
		UPDATE posts
		SET liked_by = array_remove(liked_by, $2), updated_at = NOW()
		WHERE id = $1 AND $2 = ANY(liked_by)
		RETURNING ` + postColumns

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id, userID))
	if err == sql.ErrNoRows {
		return r.GetByID(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to remove liker: %w", err)
	}

	return post, nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanPost scans a full post row into a Post
func scanPost(row rowScanner) (*posts.Post, error) {
	var (
		post    posts.Post
		image   sql.NullString
		tags    pq.StringArray
		likedBy pq.StringArray
	)

	err := row.Scan(
		&post.ID, &post.Title, &post.Text, &image, &post.Author,
		&tags, &likedBy, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if image.Valid {
		post.Image = image.String
	}
	post.Tags = []string(tags)
	if post.Tags == nil {
		post.Tags = []string{}
	}
	post.LikedBy = []string(likedBy)
	if post.LikedBy == nil {
		post.LikedBy = []string{}
	}

	return &post, nil
}

// nullString maps an empty string to SQL NULL
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
