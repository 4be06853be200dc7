package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// Handlers groups every HTTP handler of the API.
type Handlers struct {
	Movies       *MovieHandler
	Interactions *InteractionHandler
	Collections  *CollectionHandler
	Auth         *AuthHandler
	Chat         *ChatHandler
	Recommend    *RecommendationHandler
}

// RegisterRoutes mounts the API. requireAuth guards per-user routes.
func RegisterRoutes(app fiber.Router, h Handlers, requireAuth fiber.Handler) {
	app.Get("/health", h.Movies.Health)

	api := app.Group("/api")
	api.Post("/auth/register", h.Auth.Register)
	api.Post("/auth/login", h.Auth.Login)
	api.Get("/auth/profile", requireAuth, h.Auth.Profile)
	api.Post("/chat", h.Chat.Chat)

	v1 := api.Group("/v1")
	v1.Get("/movies", h.Movies.ListMovies)
	v1.Get("/movies/random", h.Movies.Random)
	v1.Get("/movies/:id", h.Movies.GetMovieDetail)
	v1.Get("/movies/:id/related", h.Movies.Related)
	v1.Get("/genres", h.Movies.Genres)
	v1.Get("/years", h.Movies.Years)

	v1.Get("/movies/:id/interaction", requireAuth, h.Interactions.GetInteraction)
	v1.Put("/movies/:id/interaction/:flag", requireAuth, h.Interactions.SetFlag)
	v1.Put("/movies/:id/rating", requireAuth, h.Interactions.SetRating)
	v1.Get("/movies/:id/reviews", requireAuth, h.Interactions.ListReviews)
	v1.Post("/movies/:id/reviews", requireAuth, h.Interactions.AddReview)

	v1.Get("/collections/:kind", requireAuth, h.Collections.GetCollection)
	v1.Delete("/collections/:kind/:movieId", requireAuth, h.Collections.Remove)
	v1.Post("/collections/:kind/remove", requireAuth, h.Collections.BulkRemove)

	v1.Get("/recommendations", requireAuth, h.Recommend.GetRecommendations)
}

// StructValidator runs validator tags during request binding.
type StructValidator struct {
	validate *validator.Validate
}

func NewStructValidator() *StructValidator {
	return &StructValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *StructValidator) Validate(out any) error {
	return v.validate.Struct(out)
}
