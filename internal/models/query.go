package models

import "fmt"

// SortKey selects the ordering of discovery and collection results.
type SortKey string

const (
	SortPopularity SortKey = "popularity"
	SortRating     SortKey = "rating"
	SortYear       SortKey = "year"
	SortTitle      SortKey = "title"

	// Collection-only keys.
	SortUserRating SortKey = "userRating"
	SortDateAdded  SortKey = "dateAdded"
)

// DefaultPageSize is the fixed discovery page size unless configured otherwise.
const DefaultPageSize = 12

var discoverySortKeys = map[SortKey]bool{
	SortPopularity: true,
	SortRating:     true,
	SortYear:       true,
	SortTitle:      true,
}

var collectionSortKeys = map[SortKey]bool{
	SortDateAdded:  true,
	SortTitle:      true,
	SortYear:       true,
	SortRating:     true,
	SortPopularity: true,
	SortUserRating: true,
}

// Query is a transient discovery request.
type Query struct {
	SearchTerm string
	Genres     []string
	// Year is an exact release-year match; 0 means no year filter.
	Year      int
	MinRating float64
	SortKey   SortKey
	Page      int
	PageSize  int
}

// Validate checks pagination and sort parameters. An empty sort key is
// treated as popularity.
func (q *Query) Validate() error {
	if q.SortKey == "" {
		q.SortKey = SortPopularity
	}
	if !discoverySortKeys[q.SortKey] {
		return fmt.Errorf("%w: unknown sort key %q", ErrInvalidQuery, q.SortKey)
	}
	if q.PageSize <= 0 {
		return fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidQuery, q.PageSize)
	}
	if q.Page < 1 {
		return fmt.Errorf("%w: page must be at least 1, got %d", ErrInvalidQuery, q.Page)
	}
	if q.Year < 0 {
		return fmt.Errorf("%w: year must not be negative", ErrInvalidQuery)
	}
	return nil
}

// SearchResult is one page of discovery results.
type SearchResult struct {
	Movies     []Movie
	TotalCount int
	Page       int
	PageSize   int
}

// TotalPages returns the number of pages needed for TotalCount.
func (r SearchResult) TotalPages() int {
	return PageCount(r.TotalCount, r.PageSize)
}

// PageCount is the number of pages needed for total items. It never adds
// total and pageSize, so it cannot overflow.
func PageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	n := total / pageSize
	if total%pageSize != 0 {
		n++
	}
	return n
}

// ListResponse converts the result into the listing response shape.
func (r SearchResult) ListResponse() MovieListResponse {
	items := make([]MovieListItem, 0, len(r.Movies))
	for _, m := range r.Movies {
		items = append(items, NewMovieListItem(m))
	}
	return MovieListResponse{
		Page:         r.Page,
		PageSize:     r.PageSize,
		TotalPages:   r.TotalPages(),
		TotalResults: r.TotalCount,
		Data:         items,
	}
}
