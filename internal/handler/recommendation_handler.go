package handler

import (
	"github.com/gofiber/fiber/v3"

	"movie-discovery/internal/middleware"
	"movie-discovery/internal/models"
	"movie-discovery/internal/service"
)

type RecommendationHandler struct {
	svc *service.RecommendationService
}

func NewRecommendationHandler(svc *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{svc: svc}
}

// GetRecommendations handles GET /api/v1/recommendations?limit=
func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	limit := fiber.Query(c, "limit", models.DefaultRecommendationLimit)

	resp, err := h.svc.Recommend(c.Context(), middleware.UserID(c), limit)
	if err != nil {
		return writeError(c, err, "failed to generate recommendations")
	}
	return c.JSON(resp)
}
