package recommend

import (
	"fmt"
	"math"
	"strings"
	"time"

	"gamecatalog/internal/models"
)

// moodOrder keeps GET /ai/moods output stable.
var moodOrder = []string{
	"relaxed",
	"excited",
	"competitive",
	"adventurous",
	"strategic",
	"nostalgic",
	"social",
	"immersive",
}

var moodGenres = map[string][]string{
	"relaxed":     {"Adventure", "Simulation", "Puzzle"},
	"excited":     {"Action", "Shooter", "Racing"},
	"competitive": {"Sports", "Fighting", "Strategy"},
	"adventurous": {"RPG", "Adventure", "Action"},
	"strategic":   {"Strategy", "RPG", "Simulation"},
	"nostalgic":   {"Adventure", "RPG", "Action"},
	"social":      {"Sports", "Racing", "Party"},
	"immersive":   {"RPG", "Adventure", "Action"},
}

var moodReasons = map[string]string{
	"relaxed":     "%s offers a laid-back gaming experience perfect for unwinding.",
	"excited":     "%s delivers thrilling action that will keep your adrenaline pumping!",
	"competitive": "%s provides intense competitive gameplay to test your skills.",
	"adventurous": "%s takes you on an epic journey full of discoveries.",
	"strategic":   "%s challenges your mind with deep strategic gameplay.",
	"nostalgic":   "%s brings back the classic gaming feel you love.",
	"social":      "%s is perfect for gaming sessions with friends.",
	"immersive":   "%s offers a deeply immersive world to lose yourself in.",
}

// Moods lists the predefined mood labels in a fixed order.
func Moods() []string {
	moods := make([]string, len(moodOrder))
	copy(moods, moodOrder)
	return moods
}

// MoodGenres maps a mood to its default genre set. Lookup is
// case-insensitive; an unrecognized mood falls back to a broad default
// instead of failing.
func MoodGenres(mood string) []string {
	if genres, ok := moodGenres[strings.ToLower(mood)]; ok {
		return genres
	}
	return []string{"Action", "Adventure"}
}

// MatchScore rates a candidate against the mood request itself, not against
// the user's favorites; it is a separate heuristic from RelevanceScore on
// purpose. The current time is an explicit argument so the recency bonus
// stays deterministic under test.
func MatchScore(game models.Game, mood string, targetGenres []string, now time.Time) int {
	score := game.Rating / 10 * 40

	matches := 0
	for _, g := range game.Genres {
		for _, target := range targetGenres {
			if g == target {
				matches++
				break
			}
		}
	}
	score += float64(matches) / math.Max(float64(len(targetGenres)), 1) * 30

	if game.MetacriticScore > 0 {
		score += float64(game.MetacriticScore) / 100 * 20
	}

	lowered := strings.ToLower(mood)
	if lowered == "excited" || lowered == "competitive" {
		if now.Year()-game.ReleaseYear() <= 2 {
			score += 10
		}
	}

	return int(math.Round(clamp(score, 0, 100)))
}

// Reason builds the human-readable justification attached to a
// recommendation.
func Reason(game models.Game, mood string) string {
	if template, ok := moodReasons[strings.ToLower(mood)]; ok {
		return fmt.Sprintf(template, game.Title)
	}
	return fmt.Sprintf("%s matches your preferences with a %.1f/10 rating.", game.Title, game.Rating)
}
