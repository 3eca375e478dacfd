package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gamecatalog/internal/models"
	"gamecatalog/internal/storage"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockFavoritesService struct {
	mock.Mock
}

func (m *mockFavoritesService) List(userID string) ([]models.Favorite, []models.Game, error) {
	args := m.Called(userID)
	var favorites []models.Favorite
	var games []models.Game
	if args.Get(0) != nil {
		favorites = args.Get(0).([]models.Favorite)
	}
	if args.Get(1) != nil {
		games = args.Get(1).([]models.Game)
	}
	return favorites, games, args.Error(2)
}

func (m *mockFavoritesService) Add(userID, gameID string) (*models.Favorite, error) {
	args := m.Called(userID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Favorite), args.Error(1)
}

func (m *mockFavoritesService) Remove(userID, gameID string) error {
	return m.Called(userID, gameID).Error(0)
}

func (m *mockFavoritesService) IsFavorite(userID, gameID string) (bool, error) {
	args := m.Called(userID, gameID)
	return args.Bool(0), args.Error(1)
}

func TestFavoritesController_GetByUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service := new(mockFavoritesService)
		controller := NewFavoritesController(service, newTestLogger())

		service.On("List", "user-1").Return(
			[]models.Favorite{{ID: "f1", UserID: "user-1", GameID: "g1"}},
			[]models.Game{{ID: "g1", Title: "Game One"}},
			nil,
		)

		req := httptest.NewRequest(http.MethodGet, "/api/favorites?userId=user-1", nil)
		rec := httptest.NewRecorder()
		controller.GetByUser(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body FavoritesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Favorites, 1)
		require.Len(t, body.Games, 1)
		assert.Equal(t, "Game One", body.Games[0].Title)
	})

	t.Run("missing userId", func(t *testing.T) {
		service := new(mockFavoritesService)
		controller := NewFavoritesController(service, newTestLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
		rec := httptest.NewRecorder()
		controller.GetByUser(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		service.AssertNotCalled(t, "List", mock.Anything)
	})

	t.Run("service error", func(t *testing.T) {
		service := new(mockFavoritesService)
		controller := NewFavoritesController(service, newTestLogger())

		service.On("List", "user-1").Return(nil, nil, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/api/favorites?userId=user-1", nil)
		rec := httptest.NewRecorder()
		controller.GetByUser(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestFavoritesController_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service := new(mockFavoritesService)
		controller := NewFavoritesController(service, newTestLogger())

		service.On("Add", "user-1", "g1").Return(&models.Favorite{
			ID: "f1", UserID: "user-1", GameID: "g1",
		}, nil)

		body := `{"user_id":"user-1","game_id":"g1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(body))
		rec := httptest.NewRecorder()
		controller.Add(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var favorite models.Favorite
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &favorite))
		assert.Equal(t, "f1", favorite.ID)
	})

	t.Run("missing fields", func(t *testing.T) {
		service := new(mockFavoritesService)
		controller := NewFavoritesController(service, newTestLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(`{"user_id":"user-1"}`))
		rec := httptest.NewRecorder()
		controller.Add(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		service.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("invalid body", func(t *testing.T) {
		service := new(mockFavoritesService)
		controller := NewFavoritesController(service, newTestLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader("not json"))
		rec := httptest.NewRecorder()
		controller.Add(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFavoritesController_Remove(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service := new(mockFavoritesService)
		controller := NewFavoritesController(service, newTestLogger())

		service.On("Remove", "user-1", "g1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/favorites?userId=user-1&gameId=g1", nil)
		rec := httptest.NewRecorder()
		controller.Remove(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("not found is distinct from success", func(t *testing.T) {
		service := new(mockFavoritesService)
		controller := NewFavoritesController(service, newTestLogger())

		service.On("Remove", "user-1", "g1").Return(storage.ErrNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/favorites?userId=user-1&gameId=g1", nil)
		rec := httptest.NewRecorder()
		controller.Remove(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing params", func(t *testing.T) {
		service := new(mockFavoritesService)
		controller := NewFavoritesController(service, newTestLogger())

		req := httptest.NewRequest(http.MethodDelete, "/api/favorites?userId=user-1", nil)
		rec := httptest.NewRecorder()
		controller.Remove(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		service.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})
}

func TestFavoritesController_Check(t *testing.T) {
	t.Run("favorite", func(t *testing.T) {
		service := new(mockFavoritesService)
		controller := NewFavoritesController(service, newTestLogger())

		service.On("IsFavorite", "user-1", "g1").Return(true, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/favorites/check?userId=user-1&gameId=g1", nil)
		rec := httptest.NewRecorder()
		controller.Check(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]bool
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body["isFavorite"])
	})

	t.Run("not favorite", func(t *testing.T) {
		service := new(mockFavoritesService)
		controller := NewFavoritesController(service, newTestLogger())

		service.On("IsFavorite", "user-1", "g1").Return(false, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/favorites/check?userId=user-1&gameId=g1", nil)
		rec := httptest.NewRecorder()
		controller.Check(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]bool
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body["isFavorite"])
	})
}
