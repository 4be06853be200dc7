package handler

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"movie-discovery/internal/models"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusFor maps domain errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidQuery),
		errors.Is(err, models.ErrInvalidRequest),
		errors.Is(err, models.ErrInvalidReview),
		errors.Is(err, models.ErrInvalidRating),
		errors.Is(err, models.ErrInvalidFlag),
		errors.Is(err, models.ErrInvalidCollection),
		errors.Is(err, models.ErrInvalidMessage):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrUnauthorized), errors.Is(err, models.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, models.ErrUserExists):
		return fiber.StatusConflict
	case errors.Is(err, models.ErrCompletionTimeout):
		return fiber.StatusGatewayTimeout
	case errors.Is(err, models.ErrCompletionFailed):
		return fiber.StatusBadGateway
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// writeError sends err as an ErrorResponse. Server errors are logged and
// their details hidden.
func writeError(c fiber.Ctx, err error, msg string) error {
	code := StatusFor(err)
	if code >= fiber.StatusInternalServerError && code != fiber.StatusGatewayTimeout && code != fiber.StatusBadGateway {
		slog.Error(msg, "path", c.Path(), "error", err)
		return c.Status(code).JSON(ErrorResponse{Error: msg})
	}
	return c.Status(code).JSON(ErrorResponse{Error: err.Error()})
}

// ErrorHandler is the app-level fallback for errors returned by handlers.
func ErrorHandler(c fiber.Ctx, err error) error {
	code := StatusFor(err)
	if code >= fiber.StatusInternalServerError {
		slog.Error("unhandled error", "path", c.Path(), "error", err)
	}
	return c.Status(code).JSON(ErrorResponse{Error: err.Error()})
}

func movieIDParam(c fiber.Ctx, name string) (int, error) {
	id, err := strconv.Atoi(c.Params(name))
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid movie ID")
	}
	return id, nil
}
