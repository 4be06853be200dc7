package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"movie-discovery/internal/catalog"
	"movie-discovery/internal/models"
	"movie-discovery/internal/repository"
)

// ReviewService validates and records reviews.
type ReviewService struct {
	catalog *catalog.Catalog
	state   *repository.StateStore
	now     func() time.Time
}

func NewReviewService(c *catalog.Catalog, state *repository.StateStore) *ReviewService {
	return &ReviewService{catalog: c, state: state, now: time.Now}
}

// Add stores a review. Empty text is rejected; the rating is clamped to 1-5.
func (s *ReviewService) Add(ctx context.Context, owner string, movieID int, text string, rating int, author string) (models.Review, error) {
	if strings.TrimSpace(text) == "" {
		return models.Review{}, fmt.Errorf("%w: text must not be empty", models.ErrInvalidReview)
	}
	if _, err := s.catalog.Get(movieID); err != nil {
		return models.Review{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return models.Review{}, fmt.Errorf("failed to generate review id: %w", err)
	}
	if strings.TrimSpace(author) == "" {
		author = models.DefaultReviewAuthor
	}

	review := models.Review{
		ID:        id.String(),
		MovieID:   movieID,
		Text:      text,
		Rating:    min(max(rating, models.MinReviewRating), models.MaxReviewRating),
		Author:    author,
		CreatedAt: s.now().UTC(),
	}
	s.state.Reviews(owner).Add(ctx, review)
	return review, nil
}

// List returns a movie's reviews, most recent first.
func (s *ReviewService) List(ctx context.Context, owner string, movieID int) ([]models.Review, error) {
	if _, err := s.catalog.Get(movieID); err != nil {
		return nil, err
	}
	return s.state.Reviews(owner).List(ctx, movieID), nil
}
