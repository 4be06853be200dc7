package service

import (
	"context"

	"movie-discovery/internal/catalog"
	"movie-discovery/internal/models"
	"movie-discovery/internal/repository"
)

// InteractionService applies user actions to catalog movies.
type InteractionService struct {
	catalog *catalog.Catalog
	state   *repository.StateStore
}

func NewInteractionService(c *catalog.Catalog, state *repository.StateStore) *InteractionService {
	return &InteractionService{catalog: c, state: state}
}

// Get returns the owner's interaction with a movie.
func (s *InteractionService) Get(ctx context.Context, owner string, movieID int) (models.Interaction, error) {
	if _, err := s.catalog.Get(movieID); err != nil {
		return models.Interaction{}, err
	}
	return s.state.Interactions(owner).Get(ctx, movieID), nil
}

// SetFlag sets liked, bookmarked or watched on a movie.
func (s *InteractionService) SetFlag(ctx context.Context, owner string, movieID int, flag string, value bool) (models.Interaction, error) {
	f, err := models.ParseFlag(flag)
	if err != nil {
		return models.Interaction{}, err
	}
	if _, err := s.catalog.Get(movieID); err != nil {
		return models.Interaction{}, err
	}
	return s.state.Interactions(owner).SetFlag(ctx, movieID, f, value)
}

// SetRating sets the user's 0-5 rating of a movie.
func (s *InteractionService) SetRating(ctx context.Context, owner string, movieID, rating int) (models.Interaction, error) {
	if _, err := s.catalog.Get(movieID); err != nil {
		return models.Interaction{}, err
	}
	return s.state.Interactions(owner).SetRating(ctx, movieID, rating)
}
