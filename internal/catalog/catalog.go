// Package catalog provides the game query layer behind the API: a common
// filter/sort/page contract with a database-backed source and an in-memory
// fixture source selected at startup.
package catalog

import (
	"gamecatalog/internal/models"
)

const (
	DefaultLimit = 12
	MaxLimit     = 100

	SortByRating      = "rating"
	SortByReleaseDate = "release_date"
	SortByTitle       = "title"
)

// Filters describes one listing request. Zero values mean "no constraint";
// out-of-range paging values are normalized, never rejected.
type Filters struct {
	Search    string
	Platforms []string
	Genres    []string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// Normalized applies the leniency policy: bad page/limit values fall back to
// defaults and the limit is capped. Sort fields are validated by each source
// against its own allow-list.
func (f Filters) Normalized() Filters {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	} else if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	return f
}

// GameUpdate is a partial update: only non-nil fields change.
type GameUpdate struct {
	Title           *string            `json:"title"`
	Description     *string            `json:"description"`
	ReleaseDate     *string            `json:"release_date"`
	Rating          *float64           `json:"rating"`
	MetacriticScore *int               `json:"metacritic_score"`
	Platforms       *models.StringList `json:"platforms"`
	Genres          *models.StringList `json:"genres"`
	Developer       *string            `json:"developer"`
	Publisher       *string            `json:"publisher"`
	CoverImage      *string            `json:"cover_image"`
	Screenshots     *models.StringList `json:"screenshots"`
}

// Source is the capability the rest of the application sees: list, lookup
// and administrative writes over a game catalog. List and the lookups are
// read-only and must never mutate the backing store.
type Source interface {
	List(f Filters) (*models.PaginatedGames, error)
	GetByID(id string) (*models.Game, error)
	GetByIDs(ids []string) ([]models.Game, error)
	Create(g *models.Game) (*models.Game, error)
	Update(id string, patch GameUpdate) (*models.Game, error)
	Delete(id string) error
}

func totalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}
