package handler

import (
	"github.com/gofiber/fiber/v3"

	"movie-discovery/internal/middleware"
	"movie-discovery/internal/models"
	"movie-discovery/internal/service"
)

// InteractionHandler serves per-user movie state: flags, ratings and reviews.
type InteractionHandler struct {
	interactions *service.InteractionService
	reviews      *service.ReviewService
	auth         *service.AuthService
}

func NewInteractionHandler(interactions *service.InteractionService, reviews *service.ReviewService, auth *service.AuthService) *InteractionHandler {
	return &InteractionHandler{interactions: interactions, reviews: reviews, auth: auth}
}

// GetInteraction returns the caller's interaction with a movie.
func (h *InteractionHandler) GetInteraction(c fiber.Ctx) error {
	id, err := movieIDParam(c, "id")
	if err != nil {
		return writeError(c, err, "invalid movie ID")
	}

	in, err := h.interactions.Get(c.Context(), middleware.UserID(c), id)
	if err != nil {
		return writeError(c, err, "failed to get interaction")
	}
	return c.JSON(in)
}

// SetFlag sets liked, bookmarked or watched.
func (h *InteractionHandler) SetFlag(c fiber.Ctx) error {
	id, err := movieIDParam(c, "id")
	if err != nil {
		return writeError(c, err, "invalid movie ID")
	}

	var req models.SetFlagRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	in, err := h.interactions.SetFlag(c.Context(), middleware.UserID(c), id, c.Params("flag"), req.Value)
	if err != nil {
		return writeError(c, err, "failed to update interaction")
	}
	return c.JSON(in)
}

// SetRating sets the caller's 0-5 rating.
func (h *InteractionHandler) SetRating(c fiber.Ctx) error {
	id, err := movieIDParam(c, "id")
	if err != nil {
		return writeError(c, err, "invalid movie ID")
	}

	var req models.SetRatingRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "rating must be an integer from 0 to 5"})
	}

	in, err := h.interactions.SetRating(c.Context(), middleware.UserID(c), id, req.Rating)
	if err != nil {
		return writeError(c, err, "failed to update rating")
	}
	return c.JSON(in)
}

// ListReviews returns the movie's reviews, newest first.
func (h *InteractionHandler) ListReviews(c fiber.Ctx) error {
	id, err := movieIDParam(c, "id")
	if err != nil {
		return writeError(c, err, "invalid movie ID")
	}

	reviews, err := h.reviews.List(c.Context(), middleware.UserID(c), id)
	if err != nil {
		return writeError(c, err, "failed to list reviews")
	}
	return c.JSON(fiber.Map{"data": reviews})
}

// AddReview submits a review. The author is the caller's username.
func (h *InteractionHandler) AddReview(c fiber.Ctx) error {
	id, err := movieIDParam(c, "id")
	if err != nil {
		return writeError(c, err, "invalid movie ID")
	}

	var req models.CreateReviewRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	userID := middleware.UserID(c)
	author := ""
	if profile, err := h.auth.Profile(userID); err == nil {
		author = profile.Username
	}

	review, err := h.reviews.Add(c.Context(), userID, id, req.Text, req.RatingOrDefault(), author)
	if err != nil {
		return writeError(c, err, "failed to add review")
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}
