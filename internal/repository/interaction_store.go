package repository

import (
	"context"
	"fmt"
	"time"

	"movie-discovery/internal/models"
)

// InteractionStore holds one owner's like/bookmark/watch/rating state.
// Writes are last-write-wins and saved before returning.
type InteractionStore struct {
	state *blobMap[models.Interaction]
	now   func() time.Time
}

// NewInteractionStore creates the store for owner.
func NewInteractionStore(p Persistence, owner string) *InteractionStore {
	return &InteractionStore{
		state: newBlobMap[models.Interaction](p, interactionsNamespace+":"+owner),
		now:   time.Now,
	}
}

// WithClock replaces the time source used for dateAdded.
func (s *InteractionStore) WithClock(now func() time.Time) *InteractionStore {
	s.now = now
	return s
}

// Get returns the interaction for a movie, or a zero interaction if absent.
func (s *InteractionStore) Get(ctx context.Context, movieID int) models.Interaction {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if in, ok := s.state.load(ctx)[movieID]; ok {
		in.MovieID = movieID
		return in
	}
	return models.Interaction{MovieID: movieID}
}

// All returns every stored interaction keyed by movie id.
func (s *InteractionStore) All(ctx context.Context) map[int]models.Interaction {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	all := s.state.load(ctx)
	for id, in := range all {
		in.MovieID = id
		all[id] = in
	}
	return all
}

// SetFlag sets one boolean flag.
func (s *InteractionStore) SetFlag(ctx context.Context, movieID int, flag models.Flag, value bool) (models.Interaction, error) {
	if _, err := models.ParseFlag(string(flag)); err != nil {
		return models.Interaction{}, err
	}
	return s.update(ctx, movieID, func(in *models.Interaction) { in.Set(flag, value) }), nil
}

// SetRating sets the 0-5 user rating; 0 clears it.
func (s *InteractionStore) SetRating(ctx context.Context, movieID, rating int) (models.Interaction, error) {
	if rating < models.MinUserRating || rating > models.MaxUserRating {
		return models.Interaction{}, fmt.Errorf("%w: %d is outside %d-%d",
			models.ErrInvalidRating, rating, models.MinUserRating, models.MaxUserRating)
	}
	return s.update(ctx, movieID, func(in *models.Interaction) { in.UserRating = rating }), nil
}

// Clear removes the movie from one collection. It reports false when the
// movie had no stored interaction.
func (s *InteractionStore) Clear(ctx context.Context, movieID int, kind models.CollectionKind) bool {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	all := s.state.load(ctx)
	in, ok := all[movieID]
	if !ok {
		return false
	}
	kind.Clear(&in)
	s.put(all, movieID, in)
	s.state.save(ctx, all)
	return true
}

func (s *InteractionStore) update(ctx context.Context, movieID int, apply func(*models.Interaction)) models.Interaction {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	all := s.state.load(ctx)
	in, ok := all[movieID]
	apply(&in)
	in.MovieID = movieID
	if !ok && !in.IsEmpty() {
		in.DateAdded = s.now().UTC()
	}
	s.put(all, movieID, in)
	s.state.save(ctx, all)
	return in
}

// put stores in, dropping records that are equivalent to absent.
func (s *InteractionStore) put(all map[int]models.Interaction, movieID int, in models.Interaction) {
	if in.IsEmpty() {
		delete(all, movieID)
		return
	}
	all[movieID] = in
}
