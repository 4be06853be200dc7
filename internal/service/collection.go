package service

import (
	"cmp"
	"context"
	"log/slog"
	"math"
	"slices"

	"movie-discovery/internal/catalog"
	"movie-discovery/internal/models"
	"movie-discovery/internal/repository"
)

// BuildCollection reconstructs one collection from the owner's interactions.
// Stats always describe the whole collection; the search term only narrows
// the returned items.
func BuildCollection(c *catalog.Catalog, interactions map[int]models.Interaction, q models.CollectionQuery) (*models.CollectionResponse, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	kind, _ := models.ParseCollectionKind(string(q.Kind))

	items := make([]models.CollectionItem, 0)
	for id, in := range interactions {
		if !kind.Includes(in) {
			continue
		}
		m, err := c.Get(id)
		if err != nil {
			slog.Debug("interaction references unknown movie", "movie_id", id)
			continue
		}
		in.MovieID = id
		items = append(items, models.CollectionItem{Movie: m, Interaction: in})
	}

	// Map iteration is random; fix a base order so every later sort is stable.
	slices.SortFunc(items, byDateAdded)
	stats := Stats(items)

	term := normalizeTerm(q.SearchTerm)
	if term != "" {
		items = slices.DeleteFunc(items, func(it models.CollectionItem) bool {
			return !matchesCollectionTerm(it.Movie, term)
		})
	}
	sortCollection(items, q.SortKey)

	return &models.CollectionResponse{Kind: kind, Items: items, Stats: stats}, nil
}

// byDateAdded orders newest first, then by movie id.
func byDateAdded(a, b models.CollectionItem) int {
	if c := b.Interaction.DateAdded.Compare(a.Interaction.DateAdded); c != 0 {
		return c
	}
	return cmp.Compare(a.Movie.ID, b.Movie.ID)
}

func sortCollection(items []models.CollectionItem, key models.SortKey) {
	switch key {
	case models.SortDateAdded:
		return
	case models.SortUserRating:
		slices.SortStableFunc(items, func(a, b models.CollectionItem) int {
			return cmp.Compare(b.Interaction.UserRating, a.Interaction.UserRating)
		})
		return
	}
	if movieCmp := movieComparator(key); movieCmp != nil {
		slices.SortStableFunc(items, func(a, b models.CollectionItem) int {
			return movieCmp(a.Movie, b.Movie)
		})
	}
}

// Stats summarises items in the order given; that order breaks top-genre ties.
func Stats(items []models.CollectionItem) models.CollectionStats {
	stats := models.CollectionStats{TotalCount: len(items), TopGenre: models.NoTopGenre}
	if len(items) == 0 {
		return stats
	}

	var sum float64
	counts := map[string]int{}
	var order []string
	for _, it := range items {
		sum += it.Movie.Rating
		for _, g := range it.Movie.Genres {
			if counts[g] == 0 {
				order = append(order, g)
			}
			counts[g]++
		}
	}

	best := 0
	for _, g := range order {
		if counts[g] > best {
			best = counts[g]
			stats.TopGenre = g
		}
	}
	stats.TotalEstimatedHours = roundOne(float64(len(items)) * models.AverageRuntimeHours)
	stats.AverageRating = roundOne(sum / float64(len(items)))
	return stats
}

func roundOne(v float64) float64 {
	return math.Round(v*10) / 10
}

// CollectionService serves collection views for one catalog.
type CollectionService struct {
	catalog *catalog.Catalog
	state   *repository.StateStore
}

func NewCollectionService(c *catalog.Catalog, state *repository.StateStore) *CollectionService {
	return &CollectionService{catalog: c, state: state}
}

// Get builds the owner's collection.
func (s *CollectionService) Get(ctx context.Context, owner string, q models.CollectionQuery) (*models.CollectionResponse, error) {
	return BuildCollection(s.catalog, s.state.Interactions(owner).All(ctx), q)
}

// Remove clears the collection's flag on one movie. It reports false when
// the movie had no interaction.
func (s *CollectionService) Remove(ctx context.Context, owner string, kind models.CollectionKind, movieID int) bool {
	return s.state.Interactions(owner).Clear(ctx, movieID, kind)
}

// BulkRemove applies Remove to every id, skipping ids without an
// interaction. It returns how many were cleared.
func (s *CollectionService) BulkRemove(ctx context.Context, owner string, kind models.CollectionKind, movieIDs []int) int {
	store := s.state.Interactions(owner)
	removed := 0
	for _, id := range movieIDs {
		if store.Clear(ctx, id, kind) {
			removed++
		}
	}
	return removed
}
