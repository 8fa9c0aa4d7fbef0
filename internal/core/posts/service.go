package posts

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// defaultStoreTimeout bounds every repository call so a stalled store
// surfaces as a transient error instead of blocking the request.
const defaultStoreTimeout = 5 * time.Second

// postService implements the Service interface
type postService struct {
	repo         Repository
	logger       *slog.Logger
	storeTimeout time.Duration
}

// NewService creates a new post service instance
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:         repo,
		logger:       logger,
		storeTimeout: defaultStoreTimeout,
	}
}

// ListAll returns all posts ordered by recency, sliced per pagination
func (s *postService) ListAll(ctx context.Context, page Pagination) (*PostList, error) {
	return s.list(ctx, ListFilter{}, page)
}

// ListByTags returns posts whose tag set intersects the requested tags
func (s *postService) ListByTags(ctx context.Context, tags []string, page Pagination) (*PostList, error) {
	tags = NormalizeTags(tags)
	if len(tags) == 0 {
		return nil, NewValidationError("tags", "at least one tag is required")
	}
	return s.list(ctx, ListFilter{Tags: tags}, page)
}

// ListByAuthor returns posts authored by the given user
func (s *postService) ListByAuthor(ctx context.Context, userID string, page Pagination) (*PostList, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	return s.list(ctx, ListFilter{Author: userID}, page)
}

// list runs a filtered, paginated query against the repository
func (s *postService) list(ctx context.Context, filter ListFilter, page Pagination) (*PostList, error) {
	page, err := page.Normalize()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	results, total, err := s.repo.List(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		s.logger.Error("failed to list posts",
			"error", err,
			"author", filter.Author,
			"tags", filter.Tags)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	if results == nil {
		results = []*Post{}
	}

	return &PostList{Total: total, Posts: results}, nil
}

// GetByID retrieves a single post by id
func (s *postService) GetByID(ctx context.Context, id string) (*Post, error) {
	if id == "" {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	return s.repo.GetByID(ctx, id)
}

// Create persists a new post with the requester as its author
func (s *postService) Create(ctx context.Context, userID string, input CreatePostInput) (*Post, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	if input.Title == "" {
		return nil, NewValidationError("title", "title is required")
	}
	if input.Text == "" {
		return nil, NewValidationError("text", "text is required")
	}

	post := &Post{
		Title:   input.Title,
		Text:    input.Text,
		Image:   input.Image,
		Author:  userID,
		Tags:    NormalizeTags(input.Tags),
		LikedBy: []string{},
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	if err := s.repo.Create(ctx, post); err != nil {
		s.logger.Error("failed to create post",
			"error", err,
			"author", userID)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("post created",
		"post", post.ID,
		"author", userID)

	return post, nil
}

// Update applies the present fields of input to the post. Existence is
// checked before ownership, so a missing post is always ErrNotFound.
func (s *postService) Update(ctx context.Context, id, userID string, input UpdatePostInput) (*Post, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !IsOwner(post.Author, userID) {
		return nil, ErrNotOwner
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, NewValidationError("title", "title cannot be empty")
		}
		post.Title = *input.Title
	}
	if input.Text != nil {
		if *input.Text == "" {
			return nil, NewValidationError("text", "text cannot be empty")
		}
		post.Text = *input.Text
	}
	if input.Image != nil {
		post.Image = *input.Image
	}
	if input.Tags != nil {
		post.Tags = NormalizeTags(*input.Tags)
	}

	if err := s.repo.Update(ctx, post); err != nil {
		s.logger.Error("failed to update post",
			"error", err,
			"post", id,
			"author", userID)
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	s.logger.Info("post updated",
		"post", id,
		"author", userID)

	return post, nil
}

// Delete permanently removes a post and returns its id
func (s *postService) Delete(ctx context.Context, id, userID string) (string, error) {
	if userID == "" {
		return "", ErrNotAuthenticated
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if !IsOwner(post.Author, userID) {
		return "", ErrNotOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete post",
			"error", err,
			"post", id,
			"author", userID)
		return "", fmt.Errorf("failed to delete post: %w", err)
	}

	s.logger.Info("post deleted",
		"post", id,
		"author", userID)

	return post.ID, nil
}

// Like adds the requester to the post's liker set. Liking twice has
// the same observable result as liking once.
func (s *postService) Like(ctx context.Context, id, userID string) (*Post, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Skip the write when the set would not change
	likers := NewLikerSet(post.LikedBy)
	if !likers.Add(userID) {
		return post, nil
	}

	updated, err := s.repo.AddLiker(ctx, id, userID)
	if err != nil {
		s.logger.Error("failed to like post",
			"error", err,
			"post", id,
			"user", userID)
		return nil, fmt.Errorf("failed to like post: %w", err)
	}

	s.logger.Info("post liked",
		"post", id,
		"user", userID)

	return updated, nil
}

// Unlike removes the requester from the post's liker set
func (s *postService) Unlike(ctx context.Context, id, userID string) (*Post, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	likers := NewLikerSet(post.LikedBy)
	if !likers.Remove(userID) {
		return post, nil
	}

	updated, err := s.repo.RemoveLiker(ctx, id, userID)
	if err != nil {
		s.logger.Error("failed to unlike post",
			"error", err,
			"post", id,
			"user", userID)
		return nil, fmt.Errorf("failed to unlike post: %w", err)
	}

	s.logger.Info("post unliked",
		"post", id,
		"user", userID)

	return updated, nil
}
