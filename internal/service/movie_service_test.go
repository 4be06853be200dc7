package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-discovery/internal/models"
)

func TestMovieServiceList(t *testing.T) {
	svc := NewMovieService(newCatalog(t, testMovies()...), nil, 2)

	resp, err := svc.ListMovies(context.Background(), models.Query{Page: 1, SortKey: models.SortTitle, PageSize: 50})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.PageSize, "page size is fixed by the service")
	assert.Equal(t, 5, resp.TotalResults)
	assert.Equal(t, 3, resp.TotalPages)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, 3, resp.Data[0].ID)

	_, err = svc.ListMovies(context.Background(), models.Query{Page: 0})
	assert.ErrorIs(t, err, models.ErrInvalidQuery)

	resp, err = NewMovieService(newCatalog(t, testMovies()...), nil, 0).ListMovies(context.Background(), models.Query{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPageSize, resp.PageSize)
}

func TestMovieServiceDetail(t *testing.T) {
	svc := NewMovieService(newCatalog(t, testMovies()...), nil, 12)

	detail, err := svc.GetMovieDetail(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "ápex", detail.Title)
	ids := make([]int, 0, len(detail.Related))
	for _, r := range detail.Related {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int{1, 2, 5}, ids)

	_, err = svc.GetMovieDetail(context.Background(), 404)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMovieServiceCatalogViews(t *testing.T) {
	svc := NewMovieService(newCatalog(t, testMovies()...), nil, 12)

	assert.Equal(t, []int{2020, 2019, 2015}, svc.Years())
	assert.Equal(t, "Sci-Fi", svc.Genres()[0].Name)

	m, err := svc.Random()
	require.NoError(t, err)
	assert.NotZero(t, m.ID)
}
