package service

import (
	"cmp"
	"context"
	"math"
	"slices"
	"strings"
	"time"

	"movie-discovery/internal/catalog"
	"movie-discovery/internal/models"
	"movie-discovery/internal/repository"
)

// recencyWindow is how many release years the recency score decays over,
// counted back from the newest movie in the catalog.
const recencyWindow = 10.0

// favouriteRating is the lowest user rating that counts as a genre preference.
const favouriteRating = 4

// RecommendationService ranks the movies an owner has not touched yet.
type RecommendationService struct {
	catalog *catalog.Catalog
	state   *repository.StateStore
	rules   []models.ScoringRule
	now     func() time.Time
}

func NewRecommendationService(c *catalog.Catalog, state *repository.StateStore, rules []models.ScoringRule) *RecommendationService {
	if len(rules) == 0 {
		rules = models.DefaultScoringRules
	}
	return &RecommendationService{catalog: c, state: state, rules: rules, now: time.Now}
}

// Recommend scores every catalog movie without a stored interaction and
// returns the best limit of them. Preferred genres come from movies the
// owner liked, watched or rated highly.
func (s *RecommendationService) Recommend(ctx context.Context, owner string, limit int) (*models.RecommendationResponse, error) {
	if limit <= 0 {
		limit = models.DefaultRecommendationLimit
	}
	limit = min(limit, models.MaxRecommendationLimit)

	interactions := s.state.Interactions(owner).All(ctx)
	prefs := s.preferredGenres(interactions)

	candidates := make([]models.Movie, 0, s.catalog.Len())
	for _, m := range s.catalog.Movies() {
		if _, seen := interactions[m.ID]; !seen {
			candidates = append(candidates, m)
		}
	}

	scored := ScoreMovies(candidates, prefs, s.rules)
	slices.SortStableFunc(scored, func(a, b models.MovieRecommendation) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}

	return &models.RecommendationResponse{
		Recommendations: scored,
		PreferredGenres: prefs,
		GeneratedAt:     s.now().UTC().Format(time.RFC3339),
	}, nil
}

// preferredGenres lists genres of favoured movies in catalog order.
func (s *RecommendationService) preferredGenres(interactions map[int]models.Interaction) []string {
	prefs := []string{}
	for _, m := range s.catalog.Movies() {
		in, ok := interactions[m.ID]
		if !ok || !(in.Liked || in.Watched || in.UserRating >= favouriteRating) {
			continue
		}
		for _, g := range m.Genres {
			if !slices.Contains(prefs, g) {
				prefs = append(prefs, g)
			}
		}
	}
	return prefs
}

// ScoreMovies applies weighted scoring rules to each movie. Unknown rule
// types are ignored; the result keeps the input order.
func ScoreMovies(movies []models.Movie, preferred []string, rules []models.ScoringRule) []models.MovieRecommendation {
	weights := make(map[string]float64, len(rules))
	for _, r := range rules {
		weights[r.RuleType] = r.Weight
	}

	var maxRating float64
	var newest int
	for _, m := range movies {
		maxRating = max(maxRating, m.Rating)
		newest = max(newest, m.ReleaseYear)
	}
	if maxRating == 0 {
		maxRating = 1
	}

	prefSet := make(map[string]bool, len(preferred))
	for _, g := range preferred {
		prefSet[strings.ToLower(g)] = true
	}

	results := make([]models.MovieRecommendation, 0, len(movies))
	for _, m := range movies {
		var total float64
		var reasons []string

		if w, ok := weights[models.RuleRating]; ok {
			score := m.Rating / maxRating
			total += score * w
			if score > 0.85 {
				reasons = append(reasons, "highly rated")
			}
		}

		if w, ok := weights[models.RuleRecency]; ok {
			score := recencyScore(m.ReleaseYear, newest)
			total += score * w
			if score > 0.7 {
				reasons = append(reasons, "recently released")
			}
		}

		if w, ok := weights[models.RuleGenreMatch]; ok && len(prefSet) > 0 {
			score := genreMatchScore(m.Genres, prefSet)
			total += score * w
			if score > 0 {
				reasons = append(reasons, "matches your favourite genres")
			}
		}

		reason := "recommended for you"
		if len(reasons) > 0 {
			reason = strings.Join(reasons, ", ")
		}

		results = append(results, models.MovieRecommendation{
			MovieListItem: models.NewMovieListItem(m),
			Score:         math.Round(total*10000) / 10000,
			Reason:        reason,
		})
	}
	return results
}

func recencyScore(year, newest int) float64 {
	age := float64(newest - year)
	if age < 0 {
		age = 0
	}
	return max(1.0-age/recencyWindow, 0)
}

func genreMatchScore(genres []string, preferred map[string]bool) float64 {
	if len(genres) == 0 {
		return 0
	}
	matches := 0
	for _, g := range genres {
		if preferred[strings.ToLower(g)] {
			matches++
		}
	}
	return float64(matches) / float64(len(genres))
}
