// Package catalog holds the immutable movie list for one process lifetime
// together with the genre and year indexes derived from it.
package catalog

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/go-playground/validator/v10"

	"movie-discovery/internal/models"
)

// Catalog is safe for concurrent reads. It is never mutated after New.
type Catalog struct {
	movies  []models.Movie
	byID    map[int]int
	byGenre map[string][]int
	genres  []models.GenreCount
	years   []int
}

// New validates the records and builds the indexes. Catalog order is the
// order of the input slice.
func New(movies []models.Movie) (*Catalog, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	c := &Catalog{
		movies:  make([]models.Movie, 0, len(movies)),
		byID:    make(map[int]int, len(movies)),
		byGenre: make(map[string][]int),
	}
	genreIdx := make(map[string]int)
	seenYear := make(map[int]bool)

	for i, m := range movies {
		if err := validate.Struct(m); err != nil {
			return nil, fmt.Errorf("movie at index %d (id %d): %w", i, m.ID, err)
		}
		if _, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("duplicate movie id %d", m.ID)
		}

		m.Genres = slices.Clone(m.Genres)
		pos := len(c.movies)
		c.movies = append(c.movies, m)
		c.byID[m.ID] = pos

		for _, g := range m.Genres {
			c.byGenre[g] = append(c.byGenre[g], pos)
			if gi, ok := genreIdx[g]; ok {
				c.genres[gi].Count++
				continue
			}
			genreIdx[g] = len(c.genres)
			c.genres = append(c.genres, models.GenreCount{Name: g, Count: 1})
		}
		if !seenYear[m.ReleaseYear] {
			seenYear[m.ReleaseYear] = true
			c.years = append(c.years, m.ReleaseYear)
		}
	}

	slices.SortFunc(c.years, func(a, b int) int { return b - a })
	return c, nil
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// Movies returns the movies in catalog order. The slice is a copy; the
// records share genre slices with the catalog and must not be modified.
func (c *Catalog) Movies() []models.Movie {
	return slices.Clone(c.movies)
}

// Get returns the movie with the given identifier.
func (c *Catalog) Get(id int) (models.Movie, error) {
	pos, ok := c.byID[id]
	if !ok {
		return models.Movie{}, fmt.Errorf("movie %d: %w", id, models.ErrNotFound)
	}
	return c.movies[pos], nil
}

// Genres returns every genre with its movie count, in first-seen order.
func (c *Catalog) Genres() []models.GenreCount {
	return slices.Clone(c.genres)
}

// Years returns the distinct release years, newest first.
func (c *Catalog) Years() []int {
	return slices.Clone(c.years)
}

// Related returns up to limit other movies that share at least one genre
// with the given movie, in catalog order.
func (c *Catalog) Related(id, limit int) ([]models.Movie, error) {
	movie, err := c.Get(id)
	if err != nil {
		return nil, err
	}

	self := c.byID[id]
	seen := map[int]bool{self: true}
	var positions []int
	for _, g := range movie.Genres {
		for _, pos := range c.byGenre[g] {
			if !seen[pos] {
				seen[pos] = true
				positions = append(positions, pos)
			}
		}
	}
	slices.Sort(positions)

	n := max(min(limit, len(positions)), 0)
	related := make([]models.Movie, 0, n)
	for _, pos := range positions[:n] {
		related = append(related, c.movies[pos])
	}
	return related, nil
}

// Random picks a movie uniformly at random.
func (c *Catalog) Random() (models.Movie, error) {
	if len(c.movies) == 0 {
		return models.Movie{}, fmt.Errorf("empty catalog: %w", models.ErrNotFound)
	}
	return c.movies[rand.IntN(len(c.movies))], nil
}
