package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/lib/pq"

	"movie-discovery/internal/models"
)

// CatalogRepository reads and writes the movies table.
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// UpsertMovie inserts or updates a movie by id.
func (r *CatalogRepository) UpsertMovie(ctx context.Context, m models.Movie) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO movies (id, title, release_year, genres, rating, poster_url, overview, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			release_year = EXCLUDED.release_year,
			genres = EXCLUDED.genres,
			rating = EXCLUDED.rating,
			poster_url = EXCLUDED.poster_url,
			overview = EXCLUDED.overview,
			updated_at = EXCLUDED.updated_at
	`, m.ID, m.Title, m.ReleaseYear, pq.Array(m.Genres), m.Rating,
		m.PosterURL, m.Overview, time.Now())
	if err != nil {
		return fmt.Errorf("failed to upsert movie %d: %w", m.ID, err)
	}
	return nil
}

// ListMovies returns every movie ordered by id, which is the catalog order.
func (r *CatalogRepository) ListMovies(ctx context.Context) ([]models.Movie, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, release_year, genres, rating,
			COALESCE(poster_url, ''), COALESCE(overview, '')
		FROM movies
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list query failed: %w", err)
	}
	defer rows.Close()

	movies := make([]models.Movie, 0)
	for rows.Next() {
		var m models.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.ReleaseYear, pq.Array(&m.Genres),
			&m.Rating, &m.PosterURL, &m.Overview); err != nil {
			slog.Error("failed to scan movie row", "error", err)
			continue
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list query failed: %w", err)
	}
	return movies, nil
}

// CountMovies returns the number of stored movies.
func (r *CatalogRepository) CountMovies(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count query failed: %w", err)
	}
	return n, nil
}
