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

func recommendationIDs(recs []models.MovieRecommendation) []int {
	out := make([]int, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}

func TestRecommendWithoutHistory(t *testing.T) {
	c := newCatalog(t, testMovies()...)
	svc := NewRecommendationService(c, repository.NewStateStore(database.NewMemoryKV()), nil)

	res, err := svc.Recommend(context.Background(), "u1", 0)
	require.NoError(t, err)
	// ties keep catalog order
	assert.Equal(t, []int{2, 5, 1, 3, 4}, recommendationIDs(res.Recommendations))
	assert.Empty(t, res.PreferredGenres)
	assert.InDelta(t, 0.58, res.Recommendations[0].Score, 1e-9)
	assert.InDelta(t, 0.3247, res.Recommendations[4].Score, 1e-9)
	assert.NotEmpty(t, res.GeneratedAt)
}

func TestRecommendUsesFavouriteGenres(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t, testMovies()...)
	state := repository.NewStateStore(database.NewMemoryKV())
	interactions := NewInteractionService(c, state)
	svc := NewRecommendationService(c, state, nil)

	_, err := interactions.SetFlag(ctx, "u1", 4, "liked", true)
	require.NoError(t, err)

	res, err := svc.Recommend(ctx, "u1", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Comedy"}, res.PreferredGenres)
	assert.Equal(t, []int{5, 2, 1, 3}, recommendationIDs(res.Recommendations), "liked movie is excluded")

	top := res.Recommendations[0]
	assert.InDelta(t, 0.78, top.Score, 1e-9)
	assert.Equal(t, "highly rated, recently released, matches your favourite genres", top.Reason)
	assert.Equal(t, "recently released", res.Recommendations[2].Reason)

	other, err := svc.Recommend(ctx, "u2", 10)
	require.NoError(t, err)
	assert.Len(t, other.Recommendations, 5, "history is per owner")
}

func TestRecommendBookmarksExcludeButDoNotPrefer(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t, testMovies()...)
	state := repository.NewStateStore(database.NewMemoryKV())
	svc := NewRecommendationService(c, state, nil)

	_, err := NewInteractionService(c, state).SetFlag(ctx, "u1", 2, "bookmarked", true)
	require.NoError(t, err)
	_, err = NewInteractionService(c, state).SetRating(ctx, "u1", 1, 3)
	require.NoError(t, err)

	res, err := svc.Recommend(ctx, "u1", 2)
	require.NoError(t, err)
	assert.Empty(t, res.PreferredGenres)
	assert.Equal(t, []int{5, 3}, recommendationIDs(res.Recommendations))
}

func TestRecommendLimit(t *testing.T) {
	c := newCatalog(t, testMovies()...)
	svc := NewRecommendationService(c, repository.NewStateStore(database.NewMemoryKV()), nil)

	tests := []struct {
		limit int
		want  int
	}{
		{limit: -1, want: 5},
		{limit: 1, want: 1},
		{limit: 3, want: 3},
		{limit: 500, want: 5},
	}
	for _, tt := range tests {
		res, err := svc.Recommend(context.Background(), "u1", tt.limit)
		require.NoError(t, err)
		assert.Len(t, res.Recommendations, tt.want, "limit %d", tt.limit)
	}
}

func TestScoreMovies(t *testing.T) {
	movies := []models.Movie{
		{ID: 1, Title: "A", ReleaseYear: 2000, Genres: []string{"Drama"}, Rating: 0},
		{ID: 2, Title: "B", ReleaseYear: 2010, Genres: []string{"drama", "War"}, Rating: 0},
	}

	t.Run("unknown rules are ignored", func(t *testing.T) {
		got := ScoreMovies(movies, nil, []models.ScoringRule{{RuleType: "votes", Weight: 1}})
		for _, r := range got {
			assert.Zero(t, r.Score)
			assert.Equal(t, "recommended for you", r.Reason)
		}
	})

	t.Run("genre match is case-insensitive and proportional", func(t *testing.T) {
		got := ScoreMovies(movies, []string{"Drama"}, []models.ScoringRule{{RuleType: models.RuleGenreMatch, Weight: 1}})
		assert.InDelta(t, 1.0, got[0].Score, 1e-9)
		assert.InDelta(t, 0.5, got[1].Score, 1e-9)
	})

	t.Run("recency decays over ten years", func(t *testing.T) {
		got := ScoreMovies(movies, nil, []models.ScoringRule{{RuleType: models.RuleRecency, Weight: 1}})
		assert.Zero(t, got[0].Score)
		assert.InDelta(t, 1.0, got[1].Score, 1e-9)
	})

	t.Run("zero ratings do not divide by zero", func(t *testing.T) {
		got := ScoreMovies(movies, nil, []models.ScoringRule{{RuleType: models.RuleRating, Weight: 1}})
		assert.Zero(t, got[0].Score)
	})
}
