package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
)

type Platform string

const (
	PlatformPC          Platform = "PC"
	PlatformPlayStation Platform = "PlayStation"
	PlatformXbox        Platform = "Xbox"
	PlatformNintendo    Platform = "Nintendo"
)

type Genre string

const (
	GenreAction    Genre = "Action"
	GenreRPG       Genre = "RPG"
	GenreStrategy  Genre = "Strategy"
	GenreAdventure Genre = "Adventure"
	GenreSports    Genre = "Sports"
	GenreShooter   Genre = "Shooter"
)

// StringList is stored as a JSON column so platform/genre sets can be
// matched in SQL with JSON_CONTAINS.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", src)
	}

	if len(data) == 0 {
		*l = StringList{}
		return nil
	}

	return json.Unmarshal(data, l)
}

func (StringList) GormDataType() string {
	return "json"
}

func (l StringList) Contains(value string) bool {
	for _, v := range l {
		if v == value {
			return true
		}
	}
	return false
}

type Game struct {
	ID              string     `json:"id" gorm:"type:varchar(36);primaryKey"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	ReleaseDate     string     `json:"release_date" gorm:"column:release_date;type:date"`
	Rating          float64    `json:"rating"`
	MetacriticScore int        `json:"metacritic_score"`
	Platforms       StringList `json:"platforms"`
	Genres          StringList `json:"genres"`
	Developer       string     `json:"developer"`
	Publisher       string     `json:"publisher"`
	CoverImage      string     `json:"cover_image"`
	Screenshots     StringList `json:"screenshots"`
	CreatedAt       *time.Time `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
}

func (Game) TableName() string {
	return "games"
}

// ReleaseYear parses the year out of the release date. An empty or
// unparsable date yields 0 and still participates in scoring averages.
func (g Game) ReleaseYear() int {
	t, err := time.Parse("2006-01-02", g.ReleaseDate)
	if err != nil {
		return 0
	}
	return t.Year()
}

// PaginatedGames is the page envelope returned by every catalog listing.
type PaginatedGames struct {
	Data       []Game `json:"data"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"totalPages"`
}
