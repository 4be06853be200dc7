package catalog

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-discovery/internal/models"
)

func sampleMovies() []models.Movie {
	return []models.Movie{
		{ID: 1, Title: "Nova", ReleaseYear: 2020, Genres: []string{"Sci-Fi"}, Rating: 7.2},
		{ID: 2, Title: "Echo", ReleaseYear: 2019, Genres: []string{"Drama"}, Rating: 8.9},
		{ID: 3, Title: "Orbit", ReleaseYear: 2020, Genres: []string{"Sci-Fi", "Drama"}, Rating: 6.1},
		{ID: 4, Title: "Laugh", ReleaseYear: 2015, Genres: []string{"Comedy"}, Rating: 5.0},
	}
}

func TestNewBuildsIndexes(t *testing.T) {
	c, err := New(sampleMovies())
	require.NoError(t, err)

	assert.Equal(t, 4, c.Len())
	assert.Equal(t, []models.GenreCount{
		{Name: "Sci-Fi", Count: 2},
		{Name: "Drama", Count: 2},
		{Name: "Comedy", Count: 1},
	}, c.Genres())
	assert.Equal(t, []int{2020, 2019, 2015}, c.Years())
}

func TestNewRejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name  string
		movie models.Movie
	}{
		{name: "zero id", movie: models.Movie{ID: 0, Title: "X", ReleaseYear: 2000, Genres: []string{"Drama"}}},
		{name: "empty title", movie: models.Movie{ID: 9, ReleaseYear: 2000, Genres: []string{"Drama"}}},
		{name: "no genres", movie: models.Movie{ID: 9, Title: "X", ReleaseYear: 2000}},
		{name: "blank genre", movie: models.Movie{ID: 9, Title: "X", ReleaseYear: 2000, Genres: []string{""}}},
		{name: "rating above ten", movie: models.Movie{ID: 9, Title: "X", ReleaseYear: 2000, Genres: []string{"Drama"}, Rating: 10.5}},
		{name: "missing year", movie: models.Movie{ID: 9, Title: "X", Genres: []string{"Drama"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New([]models.Movie{tt.movie})
			assert.Error(t, err)
		})
	}

	t.Run("duplicate id", func(t *testing.T) {
		movies := sampleMovies()
		movies[1].ID = 1
		_, err := New(movies)
		assert.ErrorContains(t, err, "duplicate movie id 1")
	})
}

func TestGet(t *testing.T) {
	c, err := New(sampleMovies())
	require.NoError(t, err)

	m, err := c.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "Echo", m.Title)

	_, err = c.Get(99)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestRelated(t *testing.T) {
	c, err := New(sampleMovies())
	require.NoError(t, err)

	related, err := c.Related(3, 6)
	require.NoError(t, err)
	ids := make([]int, 0, len(related))
	for _, m := range related {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int{1, 2}, ids)

	related, err = c.Related(3, 1)
	require.NoError(t, err)
	assert.Len(t, related, 1)

	related, err = c.Related(4, 6)
	require.NoError(t, err)
	assert.Empty(t, related)

	_, err = c.Related(42, 6)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRelatedLimitBounds(t *testing.T) {
	c, err := New(sampleMovies())
	require.NoError(t, err)

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "huge limit returns every match", limit: math.MaxInt, want: 2},
		{name: "zero limit", limit: 0, want: 0},
		{name: "negative limit", limit: -5, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			related, err := c.Related(3, tt.limit)
			require.NoError(t, err)
			assert.Len(t, related, tt.want)
		})
	}
}

func TestRelatedGenresAreCaseSensitive(t *testing.T) {
	c, err := New([]models.Movie{
		{ID: 1, Title: "A", ReleaseYear: 2000, Genres: []string{"Drama"}},
		{ID: 2, Title: "B", ReleaseYear: 2001, Genres: []string{"drama"}},
		{ID: 3, Title: "C", ReleaseYear: 2002, Genres: []string{"War", "Drama"}},
	})
	require.NoError(t, err)

	related, err := c.Related(1, 6)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, 3, related[0].ID)
}

func TestRandom(t *testing.T) {
	empty, err := New(nil)
	require.NoError(t, err)
	_, err = empty.Random()
	assert.ErrorIs(t, err, models.ErrNotFound)

	c, err := New(sampleMovies()[:1])
	require.NoError(t, err)
	m, err := c.Random()
	require.NoError(t, err)
	assert.Equal(t, 1, m.ID)
}

func TestMoviesReturnsCopy(t *testing.T) {
	c, err := New(sampleMovies())
	require.NoError(t, err)

	movies := c.Movies()
	movies[0].Title = "changed"

	m, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Nova", m.Title)
}

func TestDecodeAndEncode(t *testing.T) {
	const doc = `{"movies":[
		{"id":1,"title":"Nova","year":2020,"genre":["Sci-Fi"],"rating":7.2,"poster":"p.jpg","overview":"space"},
		{"id":2,"title":"Echo","year":2019,"genre":["Drama"],"rating":8.9}
	],"genres":[{"name":"Sci-Fi","count":99}]}`

	c, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 1, c.Genres()[0].Count, "counts are recomputed")

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, c.Movies()))

	again, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, c.Movies(), again.Movies())

	_, err = Decode(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestLoadFileBundledDataset(t *testing.T) {
	c, err := LoadFile("../../data/movies.json")
	require.NoError(t, err)
	assert.Greater(t, c.Len(), 0)
}

type stubSource struct {
	movies []models.Movie
	err    error
}

func (s stubSource) ListMovies(context.Context) ([]models.Movie, error) {
	return s.movies, s.err
}

func TestLoadFrom(t *testing.T) {
	c, err := LoadFrom(context.Background(), stubSource{movies: sampleMovies()})
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())

	_, err = LoadFrom(context.Background(), stubSource{err: errors.New("db down")})
	assert.ErrorContains(t, err, "db down")
}
