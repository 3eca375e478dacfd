package services

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"gamecatalog/internal/catalog"
	"gamecatalog/internal/models"
	"gamecatalog/internal/recommend"

	"github.com/google/uuid"
)

type GameService struct {
	source catalog.Source
	log    *slog.Logger
}

func NewGameService(source catalog.Source, log *slog.Logger) *GameService {
	return &GameService{
		source: source,
		log:    log,
	}
}

func (s *GameService) List(f catalog.Filters) (*models.PaginatedGames, error) {
	const op = "services.games.List"

	page, err := s.source.List(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

// ListWithRelevance lists games and annotates each with its relevance to the
// reference set (the user's favorite games). With sortBy=relevance the page
// is reordered by score; the underlying source has already fallen back to
// rating-descending for the fetch.
func (s *GameService) ListWithRelevance(f catalog.Filters, reference []models.Game) (*models.ScoredPage, error) {
	const op = "services.games.ListWithRelevance"

	page, err := s.source.List(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	scored := make([]models.ScoredGame, 0, len(page.Data))
	for _, g := range page.Data {
		score := recommend.RelevanceScore(g, reference)
		scored = append(scored, models.ScoredGame{
			Game:             g,
			RelevanceScore:   score,
			RelevanceVariant: recommend.RelevanceVariant(score),
		})
	}

	if f.SortBy == "relevance" {
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].RelevanceScore > scored[j].RelevanceScore
		})
	}

	return &models.ScoredPage{
		Data:       scored,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	}, nil
}

func (s *GameService) GetByID(id string) (*models.Game, error) {
	return s.source.GetByID(id)
}

func (s *GameService) Create(g *models.Game) (*models.Game, error) {
	const op = "services.games.Create"

	g.ID = uuid.New().String()
	g.Rating = clampRating(g.Rating)

	now := time.Now()
	g.CreatedAt = &now
	g.UpdatedAt = &now

	created, err := s.source.Create(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (s *GameService) Update(id string, patch catalog.GameUpdate) (*models.Game, error) {
	if patch.Rating != nil {
		clamped := clampRating(*patch.Rating)
		patch.Rating = &clamped
	}

	return s.source.Update(id, patch)
}

func (s *GameService) Delete(id string) error {
	return s.source.Delete(id)
}

func clampRating(rating float64) float64 {
	if rating < 0 {
		return 0
	}
	if rating > 10 {
		return 10
	}
	return rating
}
