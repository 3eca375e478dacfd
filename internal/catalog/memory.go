package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"gamecatalog/internal/debounce"
	"gamecatalog/internal/models"
	"gamecatalog/internal/storage"

	json "github.com/goccy/go-json"
)

const snapshotDelay = 2 * time.Second

// MemoryCatalog serves the catalog from an in-memory fixture set so the API
// can run without a database. It honors the same filter/sort/page contract
// as the DB source; search additionally matches the description. Mutations
// are persisted to an optional JSON snapshot file, coalesced so a burst of
// admin writes produces a single flush.
type MemoryCatalog struct {
	mu           sync.RWMutex
	games        []models.Game
	snapshotPath string
	snapshot     *debounce.Debouncer
	log          *slog.Logger
}

func NewMemoryCatalog(games []models.Game, snapshotPath string, log *slog.Logger) *MemoryCatalog {
	c := &MemoryCatalog{
		games:        append([]models.Game(nil), games...),
		snapshotPath: snapshotPath,
		log:          log,
	}
	if snapshotPath != "" {
		c.snapshot = debounce.New(snapshotDelay, c.writeSnapshot)
	}
	return c
}

func (c *MemoryCatalog) List(f Filters) (*models.PaginatedGames, error) {
	f = f.Normalized()

	c.mu.RLock()
	filtered := c.filter(f)
	c.mu.RUnlock()

	sortGames(filtered, f.SortBy, f.SortOrder)

	total := len(filtered)
	start := (f.Page - 1) * f.Limit
	if start > total {
		start = total
	}
	end := start + f.Limit
	if end > total {
		end = total
	}

	return &models.PaginatedGames{
		Data:       filtered[start:end],
		Total:      total,
		Page:       f.Page,
		Limit:      f.Limit,
		TotalPages: totalPages(total, f.Limit),
	}, nil
}

func (c *MemoryCatalog) filter(f Filters) []models.Game {
	search := strings.ToLower(f.Search)

	filtered := []models.Game{}
	for _, g := range c.games {
		if search != "" &&
			!strings.Contains(strings.ToLower(g.Title), search) &&
			!strings.Contains(strings.ToLower(g.Description), search) {
			continue
		}
		if len(f.Platforms) > 0 && !anyOverlap(g.Platforms, f.Platforms) {
			continue
		}
		if len(f.Genres) > 0 && !anyOverlap(g.Genres, f.Genres) {
			continue
		}
		filtered = append(filtered, g)
	}

	return filtered
}

func (c *MemoryCatalog) GetByID(id string) (*models.Game, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, g := range c.games {
		if g.ID == id {
			found := g
			return &found, nil
		}
	}

	return nil, storage.ErrNotFound
}

func (c *MemoryCatalog) GetByIDs(ids []string) ([]models.Game, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	games := []models.Game{}
	for _, g := range c.games {
		if _, ok := wanted[g.ID]; ok {
			games = append(games, g)
		}
	}

	return games, nil
}

func (c *MemoryCatalog) Create(g *models.Game) (*models.Game, error) {
	c.mu.Lock()
	c.games = append(c.games, *g)
	c.mu.Unlock()

	c.scheduleSnapshot()
	return g, nil
}

func (c *MemoryCatalog) Update(id string, patch GameUpdate) (*models.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.games {
		if c.games[i].ID != id {
			continue
		}

		applyPatch(&c.games[i], patch)
		updated := c.games[i]

		c.scheduleSnapshot()
		return &updated, nil
	}

	return nil, storage.ErrNotFound
}

func (c *MemoryCatalog) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.games {
		if c.games[i].ID == id {
			c.games = append(c.games[:i], c.games[i+1:]...)
			c.scheduleSnapshot()
			return nil
		}
	}

	return storage.ErrNotFound
}

// Close flushes a pending snapshot.
func (c *MemoryCatalog) Close() error {
	if c.snapshot != nil {
		c.snapshot.Flush()
	}
	return nil
}

func (c *MemoryCatalog) scheduleSnapshot() {
	if c.snapshot != nil {
		c.snapshot.Trigger()
	}
}

func (c *MemoryCatalog) writeSnapshot() {
	const op = "catalog.memory.writeSnapshot"

	c.mu.RLock()
	data, err := json.MarshalIndent(c.games, "", "  ")
	c.mu.RUnlock()

	if err == nil {
		err = os.WriteFile(c.snapshotPath, data, 0o644)
	}
	if err != nil && c.log != nil {
		c.log.Error("snapshot write failed",
			slog.String("operation", op),
			slog.String("path", c.snapshotPath),
			slog.String("error", err.Error()))
	}
}

func applyPatch(g *models.Game, patch GameUpdate) {
	if patch.Title != nil {
		g.Title = *patch.Title
	}
	if patch.Description != nil {
		g.Description = *patch.Description
	}
	if patch.ReleaseDate != nil {
		g.ReleaseDate = *patch.ReleaseDate
	}
	if patch.Rating != nil {
		g.Rating = *patch.Rating
	}
	if patch.MetacriticScore != nil {
		g.MetacriticScore = *patch.MetacriticScore
	}
	if patch.Platforms != nil {
		g.Platforms = *patch.Platforms
	}
	if patch.Genres != nil {
		g.Genres = *patch.Genres
	}
	if patch.Developer != nil {
		g.Developer = *patch.Developer
	}
	if patch.Publisher != nil {
		g.Publisher = *patch.Publisher
	}
	if patch.CoverImage != nil {
		g.CoverImage = *patch.CoverImage
	}
	if patch.Screenshots != nil {
		g.Screenshots = *patch.Screenshots
	}

	now := time.Now()
	g.UpdatedAt = &now
}

func anyOverlap(have models.StringList, wanted []string) bool {
	for _, w := range wanted {
		if have.Contains(w) {
			return true
		}
	}
	return false
}

// sortGames orders games in place. Unknown sort fields fall back to rating
// descending; rows with an empty sort key go last regardless of direction.
func sortGames(games []models.Game, sortBy, sortOrder string) {
	column, ok := sortColumns[sortBy]
	desc := true
	if !ok {
		column = "rating"
	} else {
		desc = strings.ToLower(sortOrder) != "asc"
	}

	sort.SliceStable(games, func(i, j int) bool {
		a, b := games[i], games[j]

		aNull, bNull := nullSortKey(a, column), nullSortKey(b, column)
		if aNull != bNull {
			return !aNull
		}

		cmp := compareGames(a, b, column)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

func nullSortKey(g models.Game, column string) bool {
	switch column {
	case "release_date":
		return g.ReleaseDate == ""
	case "title":
		return g.Title == ""
	default:
		return false
	}
}

func compareGames(a, b models.Game, column string) int {
	switch column {
	case "release_date":
		return strings.Compare(a.ReleaseDate, b.ReleaseDate)
	case "title":
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	default:
		switch {
		case a.Rating < b.Rating:
			return -1
		case a.Rating > b.Rating:
			return 1
		default:
			return 0
		}
	}
}

// LoadSnapshot reads a fixture set previously written by a MemoryCatalog.
func LoadSnapshot(path string) ([]models.Game, error) {
	const op = "catalog.memory.LoadSnapshot"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var games []models.Game
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return games, nil
}
