package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"movie-discovery/internal/models"
)

// fileFormat is the static dataset layout. The genres list in the file is
// informational; counts are recomputed from the movies.
type fileFormat struct {
	Movies []models.Movie      `json:"movies"`
	Genres []models.GenreCount `json:"genres,omitempty"`
}

// Decode reads a catalog in the static dataset format.
func Decode(r io.Reader) (*Catalog, error) {
	var f fileFormat
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return New(f.Movies)
}

// LoadFile reads a catalog from a JSON file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Info("catalog loaded", "source", path, "movies", c.Len(), "genres", len(c.genres))
	return c, nil
}

// Source lists every catalog record, for example from a database.
type Source interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
}

// LoadFrom builds a catalog from a Source.
func LoadFrom(ctx context.Context, src Source) (*Catalog, error) {
	movies, err := src.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog movies: %w", err)
	}
	c, err := New(movies)
	if err != nil {
		return nil, err
	}
	slog.Info("catalog loaded", "source", "database", "movies", c.Len(), "genres", len(c.genres))
	return c, nil
}

// Encode writes movies in the static dataset format.
func Encode(w io.Writer, movies []models.Movie) error {
	c, err := New(movies)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fileFormat{Movies: c.movies, Genres: c.genres})
}
