package repository

import (
	"context"
	"slices"

	"movie-discovery/internal/models"
)

// ReviewStore holds one owner's reviews, newest first per movie.
type ReviewStore struct {
	state *blobMap[[]models.Review]
}

// NewReviewStore creates the store for owner.
func NewReviewStore(p Persistence, owner string) *ReviewStore {
	return &ReviewStore{state: newBlobMap[[]models.Review](p, reviewsNamespace+":"+owner)}
}

// Add prepends a review to the movie's list. The review is expected to be
// validated already.
func (s *ReviewStore) Add(ctx context.Context, r models.Review) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	all := s.state.load(ctx)
	all[r.MovieID] = append([]models.Review{r}, all[r.MovieID]...)
	s.state.save(ctx, all)
}

// List returns a movie's reviews, newest first. It never returns nil.
func (s *ReviewStore) List(ctx context.Context, movieID int) []models.Review {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	reviews := s.state.load(ctx)[movieID]
	if reviews == nil {
		return []models.Review{}
	}
	return slices.Clone(reviews)
}
