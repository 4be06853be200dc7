package chat

import (
	"context"
	"math/rand/v2"
	"time"
)

// Completer produces an assistant reply for one user message.
type Completer interface {
	Complete(ctx context.Context, message string) (string, error)
}

// CannedResponses are the replies of the static assistant.
var CannedResponses = []string{
	"🎬 Welcome to MoBoe! I can help you discover amazing movies, manage your watchlist, and find your next favorite film. What would you like to explore?",
	"🍿 MoBoe offers advanced movie search and filtering! You can search by title, filter by genre, year, and rating. Try our random movie generator for surprises!",
	"⭐ Create your personal movie collections with MoBoe! Add movies to your watchlist, mark them as watched, rate them, and write reviews to remember your thoughts.",
	"🎭 Discover movies across all genres! From action-packed blockbusters to heartwarming dramas, sci-fi adventures to romantic comedies - MoBoe has it all.",
	"📊 Track your movie journey with MoBoe! See your watching statistics, favorite genres, and get personalized recommendations based on your preferences.",
}

// StaticCompleter answers with a random canned response after delay.
type StaticCompleter struct {
	delay time.Duration
}

// NewStaticCompleter creates a StaticCompleter. A zero delay answers at once.
func NewStaticCompleter(delay time.Duration) *StaticCompleter {
	return &StaticCompleter{delay: delay}
}

func (s *StaticCompleter) Complete(ctx context.Context, _ string) (string, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}
	return CannedResponses[rand.IntN(len(CannedResponses))], nil
}
