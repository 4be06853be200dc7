package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"movie-discovery/internal/models"
	"movie-discovery/internal/service"
)

// MovieHandler handles HTTP requests for the public catalog.
type MovieHandler struct {
	svc *service.MovieService
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(svc *service.MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

// Health returns service health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *MovieHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "movie-discovery",
	})
}

// ListMovies searches the catalog.
// @Summary Discover movies
// @Tags movies
// @Produce json
// @Param q query string false "Search term matched against title and overview"
// @Param genres query string false "Comma separated genres, any may match"
// @Param year query int false "Exact release year"
// @Param min_rating query number false "Minimum rating" default(0)
// @Param sort_by query string false "Sort field" Enums(popularity,rating,year,title) default(popularity)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.MovieListResponse
// @Failure 400 {object} ErrorResponse
// @Router /movies [get]
func (h *MovieHandler) ListMovies(c fiber.Ctx) error {
	q := models.Query{
		SearchTerm: c.Query("q"),
		Genres:     splitList(c.Query("genres")),
		Year:       fiber.Query(c, "year", 0),
		MinRating:  fiber.Query(c, "min_rating", 0.0),
		SortKey:    models.SortKey(c.Query("sort_by", string(models.SortPopularity))),
		Page:       fiber.Query(c, "page", 1),
	}

	result, err := h.svc.ListMovies(c.Context(), q)
	if err != nil {
		return writeError(c, err, "failed to retrieve movies")
	}
	return c.JSON(result)
}

// GetMovieDetail returns one movie with related titles.
// @Summary Get movie detail
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} models.MovieDetail
// @Failure 404 {object} ErrorResponse
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovieDetail(c fiber.Ctx) error {
	id, err := movieIDParam(c, "id")
	if err != nil {
		return writeError(c, err, "invalid movie ID")
	}

	detail, err := h.svc.GetMovieDetail(c.Context(), id)
	if err != nil {
		return writeError(c, err, "failed to retrieve movie details")
	}
	return c.JSON(detail)
}

// Related lists movies sharing a genre.
func (h *MovieHandler) Related(c fiber.Ctx) error {
	id, err := movieIDParam(c, "id")
	if err != nil {
		return writeError(c, err, "invalid movie ID")
	}

	limit := fiber.Query(c, "limit", models.DefaultRelatedLimit)
	if limit < 1 {
		limit = models.DefaultRelatedLimit
	}
	limit = min(limit, models.MaxRelatedLimit)
	related, err := h.svc.Related(id, limit)
	if err != nil {
		return writeError(c, err, "failed to retrieve related movies")
	}
	return c.JSON(fiber.Map{"data": related})
}

// Random returns a random movie.
func (h *MovieHandler) Random(c fiber.Ctx) error {
	m, err := h.svc.Random()
	if err != nil {
		return writeError(c, err, "failed to pick a movie")
	}
	return c.JSON(m)
}

// Genres lists catalog genres with counts.
func (h *MovieHandler) Genres(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.svc.Genres()})
}

// Years lists release years, newest first.
func (h *MovieHandler) Years(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.svc.Years()})
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
