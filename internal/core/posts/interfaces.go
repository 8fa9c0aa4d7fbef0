package posts

import "context"

// Service defines the business logic interface for posts. Requester
// identity is always an explicit parameter, never resolved from
// ambient state; an empty identity means "not authenticated".
type Service interface {
	// ListAll returns all posts ordered by recency, sliced per
	// pagination. Public; no authentication required.
	ListAll(ctx context.Context, page Pagination) (*PostList, error)

	// ListByTags returns posts whose tag set intersects the given tags
	// (OR across tags). Fails with a ValidationError when tags is empty.
	ListByTags(ctx context.Context, tags []string, page Pagination) (*PostList, error)

	// ListByAuthor returns posts authored by the given user.
	ListByAuthor(ctx context.Context, userID string, page Pagination) (*PostList, error)

	// GetByID retrieves a single post. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*Post, error)

	// Create persists a new post authored by userID
	Create(ctx context.Context, userID string, input CreatePostInput) (*Post, error)

	// Update applies the present fields of input to the post. Only the
	// author may update; the author field itself never changes.
	Update(ctx context.Context, id, userID string, input UpdatePostInput) (*Post, error)

	// Delete permanently removes the post and returns its id. Only the
	// author may delete.
	Delete(ctx context.Context, id, userID string) (string, error)

	// Like adds userID to the post's liker set. Idempotent: liking an
	// already-liked post returns the post unchanged.
	Like(ctx context.Context, id, userID string) (*Post, error)

	// Unlike removes userID from the post's liker set. Idempotent.
	Unlike(ctx context.Context, id, userID string) (*Post, error)
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a new post, assigning its id and timestamps
	Create(ctx context.Context, post *Post) error

	// GetByID retrieves a post by id. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*Post, error)

	// Update persists the post's content fields. Returns ErrNotFound
	// if the post no longer exists.
	Update(ctx context.Context, post *Post) error

	// Delete permanently removes a post. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// List returns posts matching the filter ordered by recency, plus
	// the total match count before slicing.
	List(ctx context.Context, filter ListFilter, limit, offset int) ([]*Post, int, error)

	// AddLiker adds userID to the post's liker set in a single atomic
	// statement ("add if absent") and returns the resulting post.
	// Concurrent likes from different users must not lose updates.
	AddLiker(ctx context.Context, id, userID string) (*Post, error)

	// RemoveLiker removes userID from the post's liker set atomically
	// and returns the resulting post.
	RemoveLiker(ctx context.Context, id, userID string) (*Post, error)
}
