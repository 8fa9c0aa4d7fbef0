package post

import (
	"net/http"
	"strconv"

	"postboard/internal/core/posts"
)

// parsePagination reads page and size query parameters. Absent keys
// stay zero so the service applies its documented defaults.
func parsePagination(r *http.Request) (posts.Pagination, error) {
	var page posts.Pagination

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		n, err := strconv.Atoi(pageStr)
		if err != nil {
			return page, posts.NewValidationError("page", "page must be a valid integer")
		}
		page.Page = n
	}

	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		n, err := strconv.Atoi(sizeStr)
		if err != nil {
			return page, posts.NewValidationError("size", "size must be a valid integer")
		}
		page.Size = n
	}

	return page, nil
}
