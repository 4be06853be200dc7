package handler

import (
	"github.com/gofiber/fiber/v3"

	"movie-discovery/internal/middleware"
	"movie-discovery/internal/models"
	"movie-discovery/internal/service"
)

// AuthHandler handles demo registration and login.
type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register creates an account.
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "username, email and password are required"})
	}

	resp, err := h.svc.Register(req)
	if err != nil {
		return writeError(c, err, "registration failed")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login issues a token.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "email and password are required"})
	}

	resp, err := h.svc.Login(req)
	if err != nil {
		return writeError(c, err, "login failed")
	}
	return c.JSON(resp)
}

// Profile returns the caller.
func (h *AuthHandler) Profile(c fiber.Ctx) error {
	user, err := h.svc.Profile(middleware.UserID(c))
	if err != nil {
		return writeError(c, err, "failed to load profile")
	}
	return c.JSON(fiber.Map{"user": user, "success": true})
}
