package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverAndGenres(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "k", r.URL.Query().Get("api_key"))
		switch r.URL.Path {
		case "/discover/movie":
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			_, _ = w.Write([]byte(`{"page":2,"total_pages":9,"results":[
				{"id":10,"title":"Heat","release_date":"1995-12-15","vote_average":7.9,"poster_path":"/h.jpg","genre_ids":[80,18]}
			]}`))
		case "/genre/movie/list":
			_, _ = w.Write([]byte(`{"genres":[{"id":80,"name":"Crime"},{"id":18,"name":"Drama"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient("k", srv.URL)

	page, err := c.DiscoverMovies(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	m := page.Results[0]
	assert.Equal(t, 1995, m.ReleaseYear())
	assert.Equal(t, ImageBaseW500+"/h.jpg", m.PosterURL())
	assert.Equal(t, []int{80, 18}, m.GenreIDs)

	genres, err := c.GetGenres(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Genre{{ID: 80, Name: "Crime"}, {ID: 18, Name: "Drama"}}, genres)
}

func TestClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewClient("bad", srv.URL).GetGenres(context.Background())
	assert.ErrorContains(t, err, "status 401")
}

func TestMovieHelpers(t *testing.T) {
	assert.Equal(t, 0, Movie{}.ReleaseYear())
	assert.Equal(t, 0, Movie{ReleaseDate: "abcd-01-01"}.ReleaseYear())
	assert.Empty(t, Movie{}.PosterURL())
}
