package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"gamecatalog/internal/models"
	"gamecatalog/internal/storage"

	json "github.com/goccy/go-json"
)

type FavoritesServicer interface {
	List(userID string) ([]models.Favorite, []models.Game, error)
	Add(userID, gameID string) (*models.Favorite, error)
	Remove(userID, gameID string) error
	IsFavorite(userID, gameID string) (bool, error)
}

type AddFavoriteRequest struct {
	UserID string `json:"user_id"`
	GameID string `json:"game_id"`
}

type FavoritesResponse struct {
	Favorites []models.Favorite `json:"favorites"`
	Games     []models.Game     `json:"games"`
}

type FavoritesController struct {
	service FavoritesServicer
	log     *slog.Logger
}

func NewFavoritesController(s FavoritesServicer, log *slog.Logger) *FavoritesController {
	return &FavoritesController{
		service: s,
		log:     log,
	}
}

func (c *FavoritesController) GetByUser(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.favorites.GetByUser"

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respondError(w, c.log, http.StatusBadRequest, "userId is required")
		return
	}

	favorites, games, err := c.service.List(userID)
	if err != nil {
		c.log.Error(ErrGetFavorites.Error(),
			slog.String("operation", op),
			slog.String("error", err.Error()))
		respondError(w, c.log, http.StatusInternalServerError, ErrGetFavorites.Error())
		return
	}

	respondJSON(w, c.log, http.StatusOK, FavoritesResponse{
		Favorites: favorites,
		Games:     games,
	})
}

func (c *FavoritesController) Add(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.favorites.Add"

	var request AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, c.log, http.StatusBadRequest, "invalid request body")
		return
	}

	if request.UserID == "" || request.GameID == "" {
		respondError(w, c.log, http.StatusBadRequest, "user_id and game_id are required")
		return
	}

	favorite, err := c.service.Add(request.UserID, request.GameID)
	if err != nil {
		c.log.Error(ErrAddFavorite.Error(),
			slog.String("operation", op),
			slog.String("error", err.Error()))
		respondError(w, c.log, http.StatusInternalServerError, ErrAddFavorite.Error())
		return
	}

	respondJSON(w, c.log, http.StatusCreated, favorite)
}

func (c *FavoritesController) Remove(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.favorites.Remove"

	userID := r.URL.Query().Get("userId")
	gameID := r.URL.Query().Get("gameId")
	if userID == "" || gameID == "" {
		respondError(w, c.log, http.StatusBadRequest, "userId and gameId are required")
		return
	}

	if err := c.service.Remove(userID, gameID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, c.log, http.StatusNotFound, "Favorite not found")
			return
		}
		c.log.Error(ErrDelFavorite.Error(),
			slog.String("operation", op),
			slog.String("error", err.Error()))
		respondError(w, c.log, http.StatusInternalServerError, ErrDelFavorite.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *FavoritesController) Check(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.favorites.Check"

	userID := r.URL.Query().Get("userId")
	gameID := r.URL.Query().Get("gameId")
	if userID == "" || gameID == "" {
		respondError(w, c.log, http.StatusBadRequest, "userId and gameId are required")
		return
	}

	isFavorite, err := c.service.IsFavorite(userID, gameID)
	if err != nil {
		c.log.Error(ErrCheckFavorite.Error(),
			slog.String("operation", op),
			slog.String("error", err.Error()))
		respondError(w, c.log, http.StatusInternalServerError, ErrCheckFavorite.Error())
		return
	}

	respondJSON(w, c.log, http.StatusOK, map[string]bool{"isFavorite": isFavorite})
}
