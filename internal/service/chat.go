package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"movie-discovery/internal/chat"
	"movie-discovery/internal/models"
)

// ChatService validates messages and bounds the completion call.
type ChatService struct {
	completer chat.Completer
	timeout   time.Duration
	now       func() time.Time
}

func NewChatService(completer chat.Completer, timeout time.Duration) *ChatService {
	return &ChatService{completer: completer, timeout: timeout, now: time.Now}
}

// Reply answers one message.
func (s *ChatService) Reply(ctx context.Context, message string) (*models.ChatResponse, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message cannot be empty or only whitespace", models.ErrInvalidMessage)
	}
	if utf8.RuneCountInString(message) > models.MaxChatMessageLength {
		return nil, fmt.Errorf("%w: message length cannot exceed %d characters",
			models.ErrInvalidMessage, models.MaxChatMessageLength)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	reply, err := s.completer.Complete(ctx, message)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", models.ErrCompletionTimeout, s.timeout)
		}
		slog.Error("chat completion failed", "error", err)
		return nil, fmt.Errorf("%w: %w", models.ErrCompletionFailed, err)
	}

	return &models.ChatResponse{
		Response:  reply,
		Success:   true,
		Timestamp: s.now().UTC().Format(time.RFC3339Nano),
	}, nil
}
