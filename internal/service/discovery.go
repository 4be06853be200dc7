package service

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"movie-discovery/internal/catalog"
	"movie-discovery/internal/models"
)

// Search filters, sorts and paginates the catalog. It has no side effects.
func Search(c *catalog.Catalog, q models.Query) (*models.SearchResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	term := normalizeTerm(q.SearchTerm)
	matched := make([]models.Movie, 0)
	for _, m := range c.Movies() {
		if matchesQuery(m, term, q) {
			matched = append(matched, m)
		}
	}

	sortMovies(matched, q.SortKey)

	total := len(matched)
	// Compare page numbers first; multiplying an out-of-range page overflows.
	page := []models.Movie{}
	if q.Page <= models.PageCount(total, q.PageSize) {
		start := (q.Page - 1) * q.PageSize
		page = matched[start : start+min(q.PageSize, total-start)]
	}

	return &models.SearchResult{
		Movies:     page,
		TotalCount: total,
		Page:       q.Page,
		PageSize:   q.PageSize,
	}, nil
}

func matchesQuery(m models.Movie, term string, q models.Query) bool {
	if term != "" && !containsFold(m.Title, term) && !containsFold(m.Overview, term) {
		return false
	}
	if len(q.Genres) > 0 && !slices.ContainsFunc(q.Genres, m.HasGenre) {
		return false
	}
	if q.Year != 0 && m.ReleaseYear != q.Year {
		return false
	}
	return m.Rating >= q.MinRating
}

// matchesCollectionTerm widens the discovery term match with genre names
// and the release year.
func matchesCollectionTerm(m models.Movie, term string) bool {
	if term == "" {
		return true
	}
	if containsFold(m.Title, term) || containsFold(m.Overview, term) {
		return true
	}
	for _, g := range m.Genres {
		if containsFold(g, term) {
			return true
		}
	}
	return strings.Contains(strconv.Itoa(m.ReleaseYear), term)
}

// normalizeTerm lower-cases the term; whitespace-only terms match everything.
func normalizeTerm(term string) string {
	if strings.TrimSpace(term) == "" {
		return ""
	}
	return strings.ToLower(term)
}

func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}

// titleCollator returns a fresh collator; collate.Collator is not safe for
// concurrent use.
func titleCollator() *collate.Collator {
	return collate.New(language.English)
}

func sortMovies(movies []models.Movie, key models.SortKey) {
	cmpFn := movieComparator(key)
	if cmpFn == nil {
		return
	}
	slices.SortStableFunc(movies, cmpFn)
}

func movieComparator(key models.SortKey) func(a, b models.Movie) int {
	switch key {
	case models.SortRating, models.SortPopularity:
		// popularity has no signal of its own and falls back to rating.
		return func(a, b models.Movie) int { return cmp.Compare(b.Rating, a.Rating) }
	case models.SortYear:
		return func(a, b models.Movie) int { return cmp.Compare(b.ReleaseYear, a.ReleaseYear) }
	case models.SortTitle:
		col := titleCollator()
		return func(a, b models.Movie) int { return col.CompareString(a.Title, b.Title) }
	}
	return nil
}
