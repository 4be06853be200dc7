package handler

import (
	"github.com/gofiber/fiber/v3"

	"movie-discovery/internal/middleware"
	"movie-discovery/internal/models"
	"movie-discovery/internal/service"
)

// CollectionHandler serves the watchlist, liked, watched and rated views.
type CollectionHandler struct {
	svc *service.CollectionService
}

func NewCollectionHandler(svc *service.CollectionService) *CollectionHandler {
	return &CollectionHandler{svc: svc}
}

// GetCollection returns the collection's items and stats.
func (h *CollectionHandler) GetCollection(c fiber.Ctx) error {
	q := models.CollectionQuery{
		Kind:       models.CollectionKind(c.Params("kind")),
		SearchTerm: c.Query("q"),
		SortKey:    models.SortKey(c.Query("sort_by")),
	}

	resp, err := h.svc.Get(c.Context(), middleware.UserID(c), q)
	if err != nil {
		return writeError(c, err, "failed to build collection")
	}
	return c.JSON(resp)
}

// Remove takes one movie out of the collection.
func (h *CollectionHandler) Remove(c fiber.Ctx) error {
	kind, err := models.ParseCollectionKind(c.Params("kind"))
	if err != nil {
		return writeError(c, err, "invalid collection")
	}
	id, err := movieIDParam(c, "movieId")
	if err != nil {
		return writeError(c, err, "invalid movie ID")
	}

	if !h.svc.Remove(c.Context(), middleware.UserID(c), kind, id) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "movie is not in any collection"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BulkRemove takes several movies out of the collection. Ids without an
// interaction are skipped.
func (h *CollectionHandler) BulkRemove(c fiber.Ctx) error {
	kind, err := models.ParseCollectionKind(c.Params("kind"))
	if err != nil {
		return writeError(c, err, "invalid collection")
	}

	var req models.BulkRemoveRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "movie_ids must be a non-empty list"})
	}

	removed := h.svc.BulkRemove(c.Context(), middleware.UserID(c), kind, req.MovieIDs)
	return c.JSON(fiber.Map{
		"removed":   removed,
		"requested": len(req.MovieIDs),
	})
}
