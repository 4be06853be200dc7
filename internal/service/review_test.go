package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-discovery/internal/database"
	"movie-discovery/internal/models"
	"movie-discovery/internal/repository"
)

func newReviewService(t *testing.T) *ReviewService {
	t.Helper()
	movies := append(testMovies(), models.Movie{ID: 6, Title: "Sixth", ReleaseYear: 2001, Genres: []string{"Drama"}, Rating: 6})
	return NewReviewService(newCatalog(t, movies...), repository.NewStateStore(database.NewMemoryKV()))
}

func TestAddReviewRejectsBlankText(t *testing.T) {
	svc := newReviewService(t)
	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.Add(context.Background(), "u1", 5, text, 4, "")
		assert.ErrorIs(t, err, models.ErrInvalidReview, "text %q", text)
	}
}

func TestAddReviewClampsRating(t *testing.T) {
	svc := newReviewService(t)
	tests := []struct {
		in, want int
	}{
		{in: 7, want: 5},
		{in: 0, want: 1},
		{in: -3, want: 1},
		{in: 3, want: 3},
	}
	for _, tt := range tests {
		r, err := svc.Add(context.Background(), "u1", 5, "Great film", tt.in, "")
		require.NoError(t, err)
		assert.Equal(t, tt.want, r.Rating, "rating %d", tt.in)
	}
}

func TestAddReviewRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newReviewService(t)

	first, err := svc.Add(ctx, "u1", 6, "Fine", 3, "")
	require.NoError(t, err)
	second, err := svc.Add(ctx, "u1", 6, "Loved it", 9, "ana")
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, models.DefaultReviewAuthor, first.Author)
	assert.Zero(t, first.Likes)
	assert.Zero(t, first.Dislikes)

	list, err := svc.List(ctx, "u1", 6)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second, list[0])
	assert.Equal(t, "Loved it", list[0].Text)
	assert.Equal(t, 5, list[0].Rating)
	assert.Equal(t, "ana", list[0].Author)
	assert.Equal(t, first.ID, list[1].ID)

	other, err := svc.List(ctx, "u2", 6)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestReviewUnknownMovie(t *testing.T) {
	svc := newReviewService(t)
	_, err := svc.Add(context.Background(), "u1", 404, "text", 3, "")
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = svc.List(context.Background(), "u1", 404)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
