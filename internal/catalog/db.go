package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gamecatalog/internal/models"
	"gamecatalog/internal/storage"
	"gamecatalog/internal/storage/mariadb"

	json "github.com/goccy/go-json"
	"gorm.io/gorm"
)

// DBCatalog serves the catalog from the relational store. Platform and genre
// filters match with OR semantics inside a set (JSON_CONTAINS per value) and
// AND semantics between the two sets.
type DBCatalog struct {
	storage *mariadb.Storage
}

func NewDBCatalog(s *mariadb.Storage) *DBCatalog {
	return &DBCatalog{storage: s}
}

var sortColumns = map[string]string{
	SortByRating:      "rating",
	SortByReleaseDate: "release_date",
	SortByTitle:       "title",
}

func (c *DBCatalog) List(f Filters) (*models.PaginatedGames, error) {
	const op = "catalog.db.List"

	f = f.Normalized()

	db := c.storage.DB.Model(&models.Game{})

	if f.Search != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}

	if len(f.Platforms) > 0 {
		cond, args := overlapCondition("platforms", f.Platforms)
		db = db.Where(cond, args...)
	}

	if len(f.Genres) > 0 {
		cond, args := overlapCondition("genres", f.Genres)
		db = db.Where(cond, args...)
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	column, ok := sortColumns[f.SortBy]
	direction := "DESC"
	if !ok {
		// Unknown sort fields silently fall back to rating descending.
		column = "rating"
	} else if strings.ToLower(f.SortOrder) == "asc" {
		direction = "ASC"
	}

	games := []models.Game{}
	if err := db.
		Order(fmt.Sprintf("%s IS NULL, %s %s", column, column, direction)).
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&games).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.PaginatedGames{
		Data:       games,
		Total:      int(count),
		Page:       f.Page,
		Limit:      f.Limit,
		TotalPages: totalPages(int(count), f.Limit),
	}, nil
}

func (c *DBCatalog) GetByID(id string) (*models.Game, error) {
	const op = "catalog.db.GetByID"

	var g models.Game
	if err := c.storage.DB.First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &g, nil
}

func (c *DBCatalog) GetByIDs(ids []string) ([]models.Game, error) {
	const op = "catalog.db.GetByIDs"

	if len(ids) == 0 {
		return []models.Game{}, nil
	}

	games := []models.Game{}
	if err := c.storage.DB.Where("id IN ?", ids).Find(&games).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return games, nil
}

func (c *DBCatalog) Create(g *models.Game) (*models.Game, error) {
	const op = "catalog.db.Create"

	if err := c.storage.DB.Create(g).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return g, nil
}

func (c *DBCatalog) Update(id string, patch GameUpdate) (*models.Game, error) {
	const op = "catalog.db.Update"

	tx := c.storage.DB.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("%s: %w", op, tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var existing models.Game
	if err := tx.First(&existing, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updates := patch.changes()
	updates["updated_at"] = time.Now()

	if err := tx.Model(&models.Game{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var updated models.Game
	if err := tx.First(&updated, "id = ?", id).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &updated, nil
}

func (c *DBCatalog) Delete(id string) error {
	const op = "catalog.db.Delete"

	res := c.storage.DB.Delete(&models.Game{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// changes collects the provided fields into a gorm update map.
func (p GameUpdate) changes() map[string]any {
	updates := make(map[string]any)

	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.ReleaseDate != nil {
		updates["release_date"] = *p.ReleaseDate
	}
	if p.Rating != nil {
		updates["rating"] = *p.Rating
	}
	if p.MetacriticScore != nil {
		updates["metacritic_score"] = *p.MetacriticScore
	}
	if p.Platforms != nil {
		updates["platforms"] = *p.Platforms
	}
	if p.Genres != nil {
		updates["genres"] = *p.Genres
	}
	if p.Developer != nil {
		updates["developer"] = *p.Developer
	}
	if p.Publisher != nil {
		updates["publisher"] = *p.Publisher
	}
	if p.CoverImage != nil {
		updates["cover_image"] = *p.CoverImage
	}
	if p.Screenshots != nil {
		updates["screenshots"] = *p.Screenshots
	}

	return updates
}

// overlapCondition builds an OR of JSON_CONTAINS checks for one JSON list
// column. Values are JSON-encoded so they compare as strings inside the
// document.
func overlapCondition(column string, values []string) (string, []any) {
	conds := make([]string, 0, len(values))
	args := make([]any, 0, len(values))

	for _, v := range values {
		encoded, _ := json.Marshal(v)
		conds = append(conds, fmt.Sprintf("JSON_CONTAINS(%s, ?)", column))
		args = append(args, string(encoded))
	}

	return "(" + strings.Join(conds, " OR ") + ")", args
}
