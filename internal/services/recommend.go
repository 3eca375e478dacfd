package services

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"gamecatalog/internal/catalog"
	"gamecatalog/internal/models"
	"gamecatalog/internal/recommend"
)

const (
	// candidatePool over-fetches so the minimum-rating post-filter still
	// leaves enough games to rank.
	candidatePool = 50

	defaultRecommendLimit = 5
)

// RecommendService turns a mood request into a ranked list of games with
// per-item justification text.
type RecommendService struct {
	source catalog.Source
	log    *slog.Logger
	now    func() time.Time
}

func NewRecommendService(source catalog.Source, log *slog.Logger) *RecommendService {
	return &RecommendService{
		source: source,
		log:    log,
		now:    time.Now,
	}
}

func (s *RecommendService) Moods() []string {
	return recommend.Moods()
}

// Recommend fetches candidates for the mood's genre set (explicit preference
// genres override it entirely), drops games below the requested minimum
// rating, scores the surviving set, sorts by score and truncates to the
// requested limit. Ties keep the rating-descending order of the fetch.
func (s *RecommendService) Recommend(req models.RecommendationRequest) ([]models.Recommendation, error) {
	const op = "services.recommend.Recommend"

	targetGenres := recommend.MoodGenres(req.Mood)
	var platforms []string
	minRating := 0.0

	if req.Preferences != nil {
		if len(req.Preferences.Genres) > 0 {
			targetGenres = req.Preferences.Genres
		}
		platforms = req.Preferences.Platforms
		minRating = req.Preferences.MinRating
	}

	page, err := s.source.List(catalog.Filters{
		Genres:    targetGenres,
		Platforms: platforms,
		SortBy:    catalog.SortByRating,
		SortOrder: "desc",
		Page:      1,
		Limit:     candidatePool,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	candidates := page.Data
	if minRating > 0 {
		kept := candidates[:0]
		for _, g := range candidates {
			if g.Rating >= minRating {
				kept = append(kept, g)
			}
		}
		candidates = kept
	}

	now := s.now()
	recommendations := make([]models.Recommendation, 0, len(candidates))
	for _, g := range candidates {
		recommendations = append(recommendations, models.Recommendation{
			Game:       g,
			MatchScore: recommend.MatchScore(g, req.Mood, targetGenres, now),
			Reason:     recommend.Reason(g, req.Mood),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})

	limit := req.Limit
	if limit <= 0 {
		limit = defaultRecommendLimit
	}
	if limit < len(recommendations) {
		recommendations = recommendations[:limit]
	}

	return recommendations, nil
}
