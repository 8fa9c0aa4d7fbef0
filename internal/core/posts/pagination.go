package posts

const (
	// DefaultPage is used when no page is requested. Pages are 1-based.
	DefaultPage = 1

	// DefaultPageSize is used when no size is requested
	DefaultPageSize = 10

	// MaxPageSize caps the number of posts per page
	MaxPageSize = 100
)

// Pagination translates a requested 1-based page and page size into an
// offset/limit pair. The zero value of either field means "absent" and
// takes the documented default; negative values are rejected.
type Pagination struct {
	Page int
	Size int
}

// Normalize applies defaults and validates the result. Absent (zero)
// fields default to page 1 and size 10; size is capped at MaxPageSize.
// Negative inputs fail with a ValidationError.
func (p Pagination) Normalize() (Pagination, error) {
	if p.Page < 0 {
		return p, NewValidationError("page", "page must be a positive integer")
	}
	if p.Size < 0 {
		return p, NewValidationError("size", "size must be a positive integer")
	}
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.Size == 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p, nil
}

// Offset returns the number of rows to skip for this page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Size
}

// Limit returns the maximum number of rows for this page.
func (p Pagination) Limit() int {
	return p.Size
}
