package domain

// Page sizes for trip listings.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PaginationParams is a resolved page request: Page counts from 1 and Limit
// lies in [1, MaxPageLimit].
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams resolves the optional ?page= and ?limit= query values.
// Missing or non-positive values fall back to page 1 and DefaultPageLimit;
// larger limits are clamped to MaxPageLimit.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: DefaultPageLimit}
	if page != nil && *page > 0 {
		p.Page = *page
	}
	if limit != nil && *limit > 0 {
		p.Limit = min(*limit, MaxPageLimit)
	}
	return p
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Window returns the [lo, hi) slice bounds of the current page within a
// collection of total items. Both bounds are clamped to total, so a page
// past the end yields an empty window.
func (p PaginationParams) Window(total int) (lo, hi int) {
	lo = min(p.Offset(), total)
	hi = min(lo+p.Limit, total)
	return lo, hi
}
