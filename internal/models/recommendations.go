package models

// ScoredGame is a game annotated with its relevance to the requesting
// user's favorites. The score is derived at query time and never persisted.
type ScoredGame struct {
	Game
	RelevanceScore   int    `json:"relevance_score"`
	RelevanceVariant string `json:"relevance_variant"`
}

// ScoredPage mirrors PaginatedGames for relevance-annotated listings.
type ScoredPage struct {
	Data       []ScoredGame `json:"data"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalPages int          `json:"totalPages"`
}

type RecommendationPreferences struct {
	Genres    []string `json:"genres"`
	Platforms []string `json:"platforms"`
	MinRating float64  `json:"minRating"`
}

type RecommendationRequest struct {
	Mood        string                     `json:"mood"`
	Preferences *RecommendationPreferences `json:"preferences"`
	Limit       int                        `json:"limit"`
}

// Recommendation is one ranked result of the mood recommender. MatchScore is
// a content fit against the mood request, not a relevance score.
type Recommendation struct {
	Game       Game   `json:"game"`
	MatchScore int    `json:"matchScore"`
	Reason     string `json:"reason"`
}
