package models

// Rule types understood by the recommendation scorer.
const (
	RuleRating     = "rating"
	RuleRecency    = "recency"
	RuleGenreMatch = "genre_match"
)

// ScoringRule weights one signal of the recommendation score.
type ScoringRule struct {
	RuleType string  `json:"rule_type"`
	Weight   float64 `json:"weight"`
}

// DefaultScoringRules is the rule set used when none is configured.
var DefaultScoringRules = []ScoringRule{
	{RuleType: RuleRating, Weight: 0.4},
	{RuleType: RuleRecency, Weight: 0.2},
	{RuleType: RuleGenreMatch, Weight: 0.4},
}

const (
	DefaultRecommendationLimit = 10
	MaxRecommendationLimit     = 50
)

// MovieRecommendation is the response shape for a recommended movie.
type MovieRecommendation struct {
	MovieListItem
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// RecommendationResponse wraps the recommendation list.
type RecommendationResponse struct {
	Recommendations []MovieRecommendation `json:"recommendations"`
	PreferredGenres []string              `json:"preferred_genres"`
	GeneratedAt     string                `json:"generated_at"`
}
