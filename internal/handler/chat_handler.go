package handler

import (
	"github.com/gofiber/fiber/v3"

	"movie-discovery/internal/models"
	"movie-discovery/internal/service"
)

// ChatHandler forwards messages to the assistant.
type ChatHandler struct {
	svc *service.ChatService
}

func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// Chat answers one message.
func (h *ChatHandler) Chat(c fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Message must be a non-empty string"})
	}

	resp, err := h.svc.Reply(c.Context(), req.Message)
	if err != nil {
		return writeError(c, err, "Failed to process chat request")
	}
	return c.JSON(resp)
}
