package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"gamecatalog/internal/catalog"
	"gamecatalog/internal/importer"
	"gamecatalog/internal/models"
	"gamecatalog/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
)

type GameServicer interface {
	List(f catalog.Filters) (*models.PaginatedGames, error)
	ListWithRelevance(f catalog.Filters, reference []models.Game) (*models.ScoredPage, error)
	GetByID(id string) (*models.Game, error)
	Create(g *models.Game) (*models.Game, error)
	Update(id string, patch catalog.GameUpdate) (*models.Game, error)
	Delete(id string) error
}

// FavoriteGamesProvider supplies the reference set for relevance-annotated
// listings.
type FavoriteGamesProvider interface {
	FavoriteGames(userID string) ([]models.Game, error)
}

type GameImporter interface {
	Import(ctx context.Context, url string) (*importer.GameDraft, error)
}

type CreateGameRequest struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description"`
	ReleaseDate     string   `json:"release_date" validate:"omitempty,datetime=2006-01-02"`
	Rating          float64  `json:"rating"`
	MetacriticScore int      `json:"metacritic_score" validate:"gte=0,lte=100"`
	Platforms       []string `json:"platforms" validate:"dive,oneof=PC PlayStation Xbox Nintendo"`
	Genres          []string `json:"genres" validate:"dive,oneof=Action RPG Strategy Adventure Sports Shooter"`
	Developer       string   `json:"developer"`
	Publisher       string   `json:"publisher"`
	CoverImage      string   `json:"cover_image"`
	Screenshots     []string `json:"screenshots"`
}

type ImportGameRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type GameController struct {
	service   GameServicer
	favorites FavoriteGamesProvider
	importer  GameImporter
	log       *slog.Logger
	validate  *validator.Validate
}

func NewGameController(s GameServicer, favorites FavoriteGamesProvider, imp GameImporter, log *slog.Logger) *GameController {
	return &GameController{
		service:   s,
		favorites: favorites,
		importer:  imp,
		log:       log,
		validate:  validator.New(),
	}
}

// GetAll lists games with filters, sorting and pagination. Malformed page
// and limit values fall back to defaults instead of failing. With a userId
// the page is annotated with relevance against that user's favorites.
func (c *GameController) GetAll(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.games.GetAll"

	filters := parseFilters(r)
	userID := r.URL.Query().Get("userId")

	if userID == "" {
		res, err := c.service.List(filters)
		if err != nil {
			c.log.Error(ErrGetGames.Error(),
				slog.String("operation", op),
				slog.String("error", err.Error()))
			respondError(w, c.log, http.StatusInternalServerError, ErrGetGames.Error())
			return
		}
		respondJSON(w, c.log, http.StatusOK, res)
		return
	}

	reference, err := c.favorites.FavoriteGames(userID)
	if err != nil {
		// No favorites means no opinion, not an error.
		c.log.Warn("could not load favorites for relevance, scoring without history",
			slog.String("operation", op),
			slog.String("error", err.Error()))
		reference = nil
	}

	res, err := c.service.ListWithRelevance(filters, reference)
	if err != nil {
		c.log.Error(ErrGetGames.Error(),
			slog.String("operation", op),
			slog.String("error", err.Error()))
		respondError(w, c.log, http.StatusInternalServerError, ErrGetGames.Error())
		return
	}

	respondJSON(w, c.log, http.StatusOK, res)
}

func (c *GameController) GetByID(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.games.GetByID"

	id := chi.URLParam(r, "id")

	res, err := c.service.GetByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, c.log, http.StatusNotFound, "Game not found")
			return
		}
		c.log.Error(ErrGetGame.Error(),
			slog.String("operation", op),
			slog.String("id", id),
			slog.String("error", err.Error()))
		respondError(w, c.log, http.StatusInternalServerError, ErrGetGame.Error())
		return
	}

	respondJSON(w, c.log, http.StatusOK, res)
}

func (c *GameController) Create(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.games.Create"

	var request CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, c.log, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := c.validate.Struct(request); err != nil {
		respondError(w, c.log, http.StatusBadRequest, err.Error())
		return
	}

	game := &models.Game{
		Title:           request.Title,
		Description:     request.Description,
		ReleaseDate:     request.ReleaseDate,
		Rating:          request.Rating,
		MetacriticScore: request.MetacriticScore,
		Platforms:       models.StringList(request.Platforms),
		Genres:          models.StringList(request.Genres),
		Developer:       request.Developer,
		Publisher:       request.Publisher,
		CoverImage:      request.CoverImage,
		Screenshots:     models.StringList(request.Screenshots),
	}

	res, err := c.service.Create(game)
	if err != nil {
		c.log.Error(ErrCreate.Error(),
			slog.String("operation", op),
			slog.String("error", err.Error()))
		respondError(w, c.log, http.StatusInternalServerError, ErrCreate.Error())
		return
	}

	respondJSON(w, c.log, http.StatusCreated, res)
}

func (c *GameController) Update(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.games.Update"

	id := chi.URLParam(r, "id")

	var patch catalog.GameUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, c.log, http.StatusBadRequest, "invalid request body")
		return
	}

	if patch.MetacriticScore != nil && (*patch.MetacriticScore < 0 || *patch.MetacriticScore > 100) {
		respondError(w, c.log, http.StatusBadRequest, "metacritic_score must be between 0 and 100")
		return
	}

	res, err := c.service.Update(id, patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, c.log, http.StatusNotFound, "Game not found")
			return
		}
		c.log.Error(ErrUpdate.Error(),
			slog.String("operation", op),
			slog.String("id", id),
			slog.String("error", err.Error()))
		respondError(w, c.log, http.StatusInternalServerError, ErrUpdate.Error())
		return
	}

	respondJSON(w, c.log, http.StatusOK, res)
}

func (c *GameController) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.games.Delete"

	id := chi.URLParam(r, "id")

	if err := c.service.Delete(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, c.log, http.StatusNotFound, "Game not found")
			return
		}
		c.log.Error(ErrDelete.Error(),
			slog.String("operation", op),
			slog.String("id", id),
			slog.String("error", err.Error()))
		respondError(w, c.log, http.StatusInternalServerError, ErrDelete.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ImportFromURL scrapes a store page into a game draft for the admin UI.
// Nothing is persisted; the draft goes back to the caller for review.
func (c *GameController) ImportFromURL(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.games.ImportFromURL"

	var request ImportGameRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, c.log, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := c.validate.Struct(request); err != nil {
		respondError(w, c.log, http.StatusBadRequest, "url is required")
		return
	}

	draft, err := c.importer.Import(r.Context(), request.URL)
	if err != nil {
		c.log.Error(ErrImport.Error(),
			slog.String("operation", op),
			slog.String("url", request.URL),
			slog.String("error", err.Error()))
		respondError(w, c.log, http.StatusBadGateway, ErrImport.Error())
		return
	}

	respondJSON(w, c.log, http.StatusOK, draft)
}

// parseFilters reads listing parameters leniently: malformed numbers fall
// back to defaults, unknown sort fields are passed through for the source to
// resolve to rating-descending.
func parseFilters(r *http.Request) catalog.Filters {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(query.Get("limit"))
	if err != nil || limit < 1 {
		limit = catalog.DefaultLimit
	} else if limit > catalog.MaxLimit {
		limit = catalog.MaxLimit
	}

	return catalog.Filters{
		Search:    query.Get("search"),
		Platforms: splitList(query.Get("platforms")),
		Genres:    splitList(query.Get("genres")),
		SortBy:    query.Get("sortBy"),
		SortOrder: query.Get("sortOrder"),
		Page:      page,
		Limit:     limit,
	}
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
