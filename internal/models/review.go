package models

import "time"

const (
	MinReviewRating = 1
	MaxReviewRating = 5

	// DefaultReviewRating applies when a review is submitted without a rating.
	DefaultReviewRating = 5

	// DefaultReviewAuthor is used when a review is submitted without an author.
	DefaultReviewAuthor = "You"
)

// Review is a user-authored review of one movie.
type Review struct {
	ID        string    `json:"id"`
	MovieID   int       `json:"movie_id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	Likes     int       `json:"likes"`
	Dislikes  int       `json:"dislikes"`
}

// CreateReviewRequest is the request body for submitting a review.
type CreateReviewRequest struct {
	Text   string `json:"text"`
	Rating *int   `json:"rating"`
}

// RatingOrDefault returns the submitted rating, or DefaultReviewRating when
// the field was omitted.
func (r CreateReviewRequest) RatingOrDefault() int {
	if r.Rating == nil {
		return DefaultReviewRating
	}
	return *r.Rating
}
