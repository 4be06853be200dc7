package service

import (
	"context"
	"fmt"
	"log/slog"

	"movie-discovery/internal/models"
	"movie-discovery/internal/tmdb"
)

// TMDBSource is the part of the TMDB client the sync needs.
type TMDBSource interface {
	DiscoverMovies(ctx context.Context, page int) (*tmdb.DiscoverResponse, error)
	GetGenres(ctx context.Context) ([]tmdb.Genre, error)
}

// MovieSink receives synced movies.
type MovieSink interface {
	UpsertMovie(ctx context.Context, m models.Movie) error
}

// SyncService copies popular TMDB movies into the catalog store.
type SyncService struct {
	source TMDBSource
	sink   MovieSink
}

// NewSyncService creates a SyncService. sink may be nil to only collect movies.
func NewSyncService(source TMDBSource, sink MovieSink) *SyncService {
	return &SyncService{source: source, sink: sink}
}

// SyncMovies fetches pages of TMDB discover results and returns the movies
// that form valid catalog records. TMDB's vote average becomes the rating.
func (s *SyncService) SyncMovies(ctx context.Context, pages int) ([]models.Movie, error) {
	slog.Info("starting TMDB sync", "pages", pages)

	genres, err := s.source.GetGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch TMDB genres: %w", err)
	}
	genreNames := make(map[int]string, len(genres))
	for _, g := range genres {
		genreNames[g.ID] = g.Name
	}
	slog.Info("fetched genres", "count", len(genres))

	synced := make([]models.Movie, 0)
	seen := map[int]bool{}
	for page := 1; page <= pages; page++ {
		if err := ctx.Err(); err != nil {
			return synced, err
		}
		result, err := s.source.DiscoverMovies(ctx, page)
		if err != nil {
			slog.Error("failed to fetch TMDB page", "page", page, "error", err)
			continue
		}

		for _, tm := range result.Results {
			if seen[tm.ID] {
				continue
			}
			movie := toCatalogMovie(tm, genreNames)
			if err := validate.Struct(movie); err != nil {
				slog.Debug("skipping incomplete TMDB movie", "tmdb_id", tm.ID, "error", err)
				continue
			}
			if s.sink != nil {
				if err := s.sink.UpsertMovie(ctx, movie); err != nil {
					slog.Error("failed to upsert movie", "title", movie.Title, "error", err)
					continue
				}
			}
			seen[tm.ID] = true
			synced = append(synced, movie)
		}

		slog.Info("synced page", "page", page, "movies", len(result.Results))
		if page >= result.TotalPages {
			break
		}
	}

	slog.Info("TMDB sync completed", "total_synced", len(synced))
	return synced, nil
}

func toCatalogMovie(tm tmdb.Movie, genreNames map[int]string) models.Movie {
	genres := make([]string, 0, len(tm.GenreIDs))
	for _, id := range tm.GenreIDs {
		if name, ok := genreNames[id]; ok {
			genres = append(genres, name)
		}
	}
	return models.Movie{
		ID:          tm.ID,
		Title:       tm.Title,
		ReleaseYear: tm.ReleaseYear(),
		Genres:      genres,
		Rating:      min(max(tm.VoteAverage, 0), 10),
		PosterURL:   tm.PosterURL(),
		Overview:    tm.Overview,
	}
}
