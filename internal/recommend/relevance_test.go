package recommend

import (
	"testing"

	"gamecatalog/internal/models"

	"github.com/stretchr/testify/assert"
)

func favoriteGame() models.Game {
	return models.Game{
		ID:          "fav",
		Title:       "Favorite",
		ReleaseDate: "2015-05-19",
		Rating:      9.0,
		Platforms:   models.StringList{"PC"},
		Genres:      models.StringList{"RPG", "Action"},
	}
}

func TestRelevanceScore_EmptyReferenceSet(t *testing.T) {
	game := models.Game{
		Rating:    9.9,
		Genres:    models.StringList{"Action"},
		Platforms: models.StringList{"PC"},
	}

	assert.Equal(t, 0, RelevanceScore(game, nil))
	assert.Equal(t, 0, RelevanceScore(game, []models.Game{}))
}

func TestRelevanceScore_IdenticalGameScoresFull(t *testing.T) {
	candidate := models.Game{
		ID:          "candidate",
		ReleaseDate: "2015-01-01",
		Rating:      9.0,
		Platforms:   models.StringList{"PC"},
		Genres:      models.StringList{"RPG", "Action"},
	}

	assert.Equal(t, 100, RelevanceScore(candidate, []models.Game{favoriteGame()}))
}

func TestRelevanceScore_DisjointSetsLeaveRatingAndYear(t *testing.T) {
	candidate := models.Game{
		ReleaseDate: "2015-01-01",
		Rating:      9.0,
		Platforms:   models.StringList{"Nintendo"},
		Genres:      models.StringList{"Sports"},
	}

	// Genre and platform components are zero; rating and year components
	// are full, so only their weights remain: 0.20*100 + 0.15*100 = 35.
	assert.Equal(t, 35, RelevanceScore(candidate, []models.Game{favoriteGame()}))
}

func TestRelevanceScore_RewardsSharedGenresAndPlatforms(t *testing.T) {
	shared := models.Game{
		ReleaseDate: "2015-01-01",
		Rating:      9.0,
		Platforms:   models.StringList{"PC"},
		Genres:      models.StringList{"RPG", "Action"},
	}
	different := models.Game{
		ReleaseDate: "2015-01-01",
		Rating:      9.0,
		Platforms:   models.StringList{"Nintendo"},
		Genres:      models.StringList{"Strategy"},
	}

	reference := []models.Game{favoriteGame()}

	assert.Greater(t, RelevanceScore(shared, reference), RelevanceScore(different, reference))
}

func TestRelevanceScore_InvariantToReferenceOrder(t *testing.T) {
	a := favoriteGame()
	b := models.Game{
		ID:          "other",
		ReleaseDate: "2020-03-03",
		Rating:      7.5,
		Platforms:   models.StringList{"Xbox", "PC"},
		Genres:      models.StringList{"Shooter"},
	}
	candidate := models.Game{
		ReleaseDate: "2018-06-01",
		Rating:      8.2,
		Platforms:   models.StringList{"PC"},
		Genres:      models.StringList{"Action", "Shooter"},
	}

	assert.Equal(t,
		RelevanceScore(candidate, []models.Game{a, b}),
		RelevanceScore(candidate, []models.Game{b, a}),
	)
}

func TestRelevanceScore_StaysInRange(t *testing.T) {
	reference := []models.Game{favoriteGame()}

	pathological := []models.Game{
		{Rating: 10, ReleaseDate: "1970-01-01"},
		{Rating: 0, ReleaseDate: ""},
		{Rating: 10, Platforms: models.StringList{"PC"}, Genres: models.StringList{"RPG", "Action"}, ReleaseDate: "2015-05-19"},
		{Rating: -5, ReleaseDate: "not-a-date"},
	}

	for _, g := range pathological {
		score := RelevanceScore(g, reference)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestRelevanceScore_UnparsableDateCountsAsYearZero(t *testing.T) {
	// A reference game with a broken date drags the mean year toward zero;
	// the year component collapses but the score stays valid.
	reference := []models.Game{favoriteGame(), {
		Rating:      9.0,
		ReleaseDate: "someday",
		Platforms:   models.StringList{"PC"},
		Genres:      models.StringList{"RPG"},
	}}

	candidate := models.Game{
		ReleaseDate: "2015-01-01",
		Rating:      9.0,
		Platforms:   models.StringList{"PC"},
		Genres:      models.StringList{"RPG", "Action"},
	}

	score := RelevanceScore(candidate, reference)
	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 100)
	// Year component is zero, the other three are full:
	// (100*0.40 + 100*0.25 + 100*0.20) / 1.00 = 85.
	assert.Equal(t, 85, score)
}

func TestRelevanceVariant_Boundaries(t *testing.T) {
	assert.Equal(t, "high", RelevanceVariant(80))
	assert.Equal(t, "high", RelevanceVariant(75))
	assert.Equal(t, "medium", RelevanceVariant(74))
	assert.Equal(t, "medium", RelevanceVariant(60))
	assert.Equal(t, "medium", RelevanceVariant(50))
	assert.Equal(t, "low", RelevanceVariant(49))
	assert.Equal(t, "low", RelevanceVariant(30))
	assert.Equal(t, "low", RelevanceVariant(25))
	assert.Equal(t, "minimal", RelevanceVariant(24))
	assert.Equal(t, "minimal", RelevanceVariant(10))
	assert.Equal(t, "minimal", RelevanceVariant(0))
}
