package services

import (
	"io"
	"log/slog"
	"testing"

	"gamecatalog/internal/catalog"
	"gamecatalog/internal/models"
	"gamecatalog/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func referenceGame() models.Game {
	return models.Game{
		ID:          "reference",
		Title:       "Reference",
		ReleaseDate: "2015-01-01",
		Rating:      5.0,
		Platforms:   models.StringList{"PC"},
		Genres:      models.StringList{"RPG"},
	}
}

// relevanceSource holds a perfect match with a low rating and a mismatch
// with a high rating, so rating order and relevance order disagree.
func relevanceSource() *catalog.MemoryCatalog {
	return catalog.NewMemoryCatalog([]models.Game{
		{
			ID:          "match",
			Title:       "Perfect Match",
			ReleaseDate: "2015-01-01",
			Rating:      5.0,
			Platforms:   models.StringList{"PC"},
			Genres:      models.StringList{"RPG"},
		},
		{
			ID:          "mismatch",
			Title:       "Crowd Favorite",
			ReleaseDate: "1990-01-01",
			Rating:      9.9,
			Platforms:   models.StringList{"Xbox"},
			Genres:      models.StringList{"Sports"},
		},
	}, "", nil)
}

func TestGameService_List(t *testing.T) {
	service := NewGameService(relevanceSource(), newTestLogger())

	page, err := service.List(catalog.Filters{})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, "mismatch", page.Data[0].ID)
}

func TestGameService_ListWithRelevance_Annotates(t *testing.T) {
	service := NewGameService(relevanceSource(), newTestLogger())

	page, err := service.ListWithRelevance(catalog.Filters{}, []models.Game{referenceGame()})
	require.NoError(t, err)
	require.Len(t, page.Data, 2)

	// Without sortBy=relevance the source order (rating descending) stands.
	assert.Equal(t, "mismatch", page.Data[0].ID)
	assert.Equal(t, "minimal", page.Data[0].RelevanceVariant)
	assert.Equal(t, "match", page.Data[1].ID)
	assert.Equal(t, 100, page.Data[1].RelevanceScore)
	assert.Equal(t, "high", page.Data[1].RelevanceVariant)
}

func TestGameService_ListWithRelevance_SortsByScore(t *testing.T) {
	service := NewGameService(relevanceSource(), newTestLogger())

	page, err := service.ListWithRelevance(
		catalog.Filters{SortBy: "relevance"},
		[]models.Game{referenceGame()},
	)
	require.NoError(t, err)
	require.Len(t, page.Data, 2)

	assert.Equal(t, "match", page.Data[0].ID)
	assert.Equal(t, "mismatch", page.Data[1].ID)
	assert.Greater(t, page.Data[0].RelevanceScore, page.Data[1].RelevanceScore)
}

func TestGameService_ListWithRelevance_EmptyReference(t *testing.T) {
	service := NewGameService(relevanceSource(), newTestLogger())

	page, err := service.ListWithRelevance(catalog.Filters{}, nil)
	require.NoError(t, err)

	for _, g := range page.Data {
		assert.Equal(t, 0, g.RelevanceScore)
		assert.Equal(t, "minimal", g.RelevanceVariant)
	}
}

func TestGameService_Create(t *testing.T) {
	source := catalog.NewMemoryCatalog(nil, "", nil)
	service := NewGameService(source, newTestLogger())

	created, err := service.Create(&models.Game{Title: "New Game", Rating: 12})
	require.NoError(t, err)

	_, err = uuid.Parse(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, 10.0, created.Rating)
	assert.NotNil(t, created.CreatedAt)
	assert.NotNil(t, created.UpdatedAt)

	stored, err := source.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Game", stored.Title)
}

func TestGameService_Update_ClampsRating(t *testing.T) {
	source := relevanceSource()
	service := NewGameService(source, newTestLogger())

	rating := -3.0
	updated, err := service.Update("match", catalog.GameUpdate{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.Rating)
}

func TestGameService_Delete(t *testing.T) {
	source := relevanceSource()
	service := NewGameService(source, newTestLogger())

	require.NoError(t, service.Delete("match"))
	assert.ErrorIs(t, service.Delete("match"), storage.ErrNotFound)
}
