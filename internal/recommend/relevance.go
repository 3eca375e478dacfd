package recommend

import (
	"math"

	"gamecatalog/internal/models"
)

const (
	genreWeight    = 0.40
	platformWeight = 0.25
	ratingWeight   = 0.20
	yearWeight     = 0.15

	weightSum = genreWeight + platformWeight + ratingWeight + yearWeight

	// A full point of rating distance (or a year of release distance)
	// costs 10 score points, so gaps of 10 or more zero the component.
	ratingSensitivity = 10
	yearSensitivity   = 10
)

// RelevanceScore rates how well a candidate game matches the user's
// favorites on a 0-100 scale. It is a pure function of the candidate and the
// derived unions/means of the reference set, so reordering favorites never
// changes the result. An empty reference set always scores 0.
func RelevanceScore(game models.Game, favorites []models.Game) int {
	if len(favorites) == 0 {
		return 0
	}

	favoriteGenres := collectSet(favorites, func(g models.Game) models.StringList { return g.Genres })
	favoritePlatforms := collectSet(favorites, func(g models.Game) models.StringList { return g.Platforms })

	var ratingSum, yearSum float64
	for _, f := range favorites {
		ratingSum += f.Rating
		yearSum += float64(f.ReleaseYear())
	}
	averageRating := ratingSum / float64(len(favorites))
	averageYear := yearSum / float64(len(favorites))

	genreScore := sharedRatio(game.Genres, favoriteGenres)
	platformScore := sharedRatio(game.Platforms, favoritePlatforms)

	ratingScore := clamp(100-math.Abs(game.Rating-averageRating)*ratingSensitivity, 0, 100)
	yearScore := clamp(100-math.Abs(float64(game.ReleaseYear())-averageYear)*yearSensitivity, 0, 100)

	relevance := (genreScore*genreWeight +
		platformScore*platformWeight +
		ratingScore*ratingWeight +
		yearScore*yearWeight) / weightSum

	return int(math.Round(clamp(relevance, 0, 100)))
}

// RelevanceVariant buckets a score for presentation. Thresholds are
// inclusive at the lower bound of each band.
func RelevanceVariant(score int) string {
	switch {
	case score >= 75:
		return "high"
	case score >= 50:
		return "medium"
	case score >= 25:
		return "low"
	default:
		return "minimal"
	}
}

func collectSet(games []models.Game, selector func(models.Game) models.StringList) map[string]struct{} {
	result := make(map[string]struct{})
	for _, g := range games {
		for _, v := range selector(g) {
			result[v] = struct{}{}
		}
	}
	return result
}

// sharedRatio returns the percentage of the reference set covered by the
// candidate's values. An empty reference set yields 0.
func sharedRatio(values models.StringList, reference map[string]struct{}) float64 {
	if len(reference) == 0 {
		return 0
	}

	shared := 0
	for _, v := range values {
		if _, ok := reference[v]; ok {
			shared++
		}
	}

	return float64(shared) / float64(len(reference)) * 100
}

func clamp(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}
