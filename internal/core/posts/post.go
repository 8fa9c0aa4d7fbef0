package posts

import (
	"time"
)

// Post represents an authored post with its tag and liker sets.
// Author is set once at creation and never changes. Tags and LikedBy
// are duplicate-free; LikedBy membership means "has liked".
type Post struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Text      string    `json:"text" db:"text"`
	Image     string    `json:"image,omitempty" db:"image"`
	Author    string    `json:"author" db:"author"`
	Tags      []string  `json:"tags" db:"tags"`
	LikedBy   []string  `json:"likedBy" db:"liked_by"`
}

// CreatePostInput represents input for creating a new post.
// Title and Text are required; Image and Tags are optional.
type CreatePostInput struct {
	Title string   `json:"title"`
	Text  string   `json:"text"`
	Image string   `json:"image,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

// UpdatePostInput represents a partial update. Nil fields are left
// untouched; only present fields are applied to the post.
type UpdatePostInput struct {
	Title *string   `json:"title,omitempty"`
	Text  *string   `json:"text,omitempty"`
	Image *string   `json:"image,omitempty"`
	Tags  *[]string `json:"tags,omitempty"`
}

// PostList is the paginated listing envelope. Total reflects the
// unsliced match count for the same filter.
type PostList struct {
	Total int     `json:"total"`
	Posts []*Post `json:"posts"`
}

// ListFilter narrows a listing query. The zero value matches all posts.
// Author filters by exact author identity; Tags matches posts whose
// tag set intersects the given set (OR across tags).
type ListFilter struct {
	Author string
	Tags   []string
}

// NormalizeTags collapses duplicates and drops empty entries while
// preserving first-seen order for display.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	return normalized
}
