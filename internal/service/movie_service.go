package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"movie-discovery/internal/catalog"
	"movie-discovery/internal/models"
)

const (
	movieListCacheTTL   = 5 * time.Minute
	movieDetailCacheTTL = 30 * time.Minute
)

// MovieService serves catalog reads. Listing and detail responses are cached
// in Redis when a client is configured.
type MovieService struct {
	catalog  *catalog.Catalog
	redis    *redis.Client
	pageSize int
}

// NewMovieService creates a new MovieService. rdb may be nil.
func NewMovieService(c *catalog.Catalog, rdb *redis.Client, pageSize int) *MovieService {
	if pageSize <= 0 {
		pageSize = models.DefaultPageSize
	}
	return &MovieService{catalog: c, redis: rdb, pageSize: pageSize}
}

// ListMovies runs a discovery query with the service's page size.
func (s *MovieService) ListMovies(ctx context.Context, q models.Query) (*models.MovieListResponse, error) {
	q.PageSize = s.pageSize
	if err := q.Validate(); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("movies:list:%d:%d:%s:%s:%d:%g:%s",
		q.Page, q.PageSize, q.SortKey, strings.Join(q.Genres, ","),
		q.Year, q.MinRating, strings.ToLower(strings.TrimSpace(q.SearchTerm)))

	var cached models.MovieListResponse
	if s.getFromCache(ctx, cacheKey, &cached) {
		slog.Debug("cache hit", "key", cacheKey)
		return &cached, nil
	}

	result, err := Search(s.catalog, q)
	if err != nil {
		return nil, err
	}
	resp := result.ListResponse()
	s.setCache(ctx, cacheKey, resp, movieListCacheTTL)
	return &resp, nil
}

// GetMovieDetail returns a movie with up to six related movies.
func (s *MovieService) GetMovieDetail(ctx context.Context, id int) (*models.MovieDetail, error) {
	cacheKey := fmt.Sprintf("movie:detail:%d", id)

	var cached models.MovieDetail
	if s.getFromCache(ctx, cacheKey, &cached) {
		slog.Debug("cache hit", "key", cacheKey)
		return &cached, nil
	}

	m, err := s.catalog.Get(id)
	if err != nil {
		return nil, err
	}
	related, err := s.Related(id, models.DefaultRelatedLimit)
	if err != nil {
		return nil, err
	}

	detail := &models.MovieDetail{
		ID:          m.ID,
		Title:       m.Title,
		Overview:    m.Overview,
		ReleaseYear: m.ReleaseYear,
		Genres:      m.Genres,
		Rating:      m.Rating,
		PosterURL:   m.PosterURL,
		Related:     related,
	}
	s.setCache(ctx, cacheKey, detail, movieDetailCacheTTL)
	return detail, nil
}

// Related lists movies sharing a genre with id, in catalog order.
func (s *MovieService) Related(id, limit int) ([]models.MovieListItem, error) {
	movies, err := s.catalog.Related(id, limit)
	if err != nil {
		return nil, err
	}
	items := make([]models.MovieListItem, 0, len(movies))
	for _, m := range movies {
		items = append(items, models.NewMovieListItem(m))
	}
	return items, nil
}

// Random picks a movie uniformly at random.
func (s *MovieService) Random() (models.Movie, error) {
	return s.catalog.Random()
}

// Genres lists catalog genres with counts.
func (s *MovieService) Genres() []models.GenreCount {
	return s.catalog.Genres()
}

// Years lists release years, newest first.
func (s *MovieService) Years() []int {
	return s.catalog.Years()
}

// ---- Redis Helpers ----

func (s *MovieService) getFromCache(ctx context.Context, key string, dst any) bool {
	if s.redis == nil {
		return false
	}
	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("cache read failed", "key", key, "error", err)
		}
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

func (s *MovieService) setCache(ctx context.Context, key string, value any, ttl time.Duration) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, data, ttl).Err(); err != nil {
		slog.Error("failed to set cache", "key", key, "error", err)
	}
}

// InvalidateCache drops every cached listing and detail.
func InvalidateCache(ctx context.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	for _, pattern := range []string{"movies:*", "movie:*"} {
		iter := rdb.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			rdb.Del(ctx, iter.Val())
		}
		if err := iter.Err(); err != nil {
			slog.Error("cache invalidation failed", "pattern", pattern, "error", err)
			return
		}
	}
	slog.Info("Redis cache invalidated")
}
