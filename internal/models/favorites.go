package models

import "time"

// Favorite pairs a user with a game. The (user_id, game_id) pair is unique;
// re-adding an existing pair returns the stored row instead of failing.
type Favorite struct {
	ID        string     `json:"id" gorm:"type:varchar(36);primaryKey"`
	UserID    string     `json:"user_id" gorm:"column:user_id;type:varchar(64)"`
	GameID    string     `json:"game_id" gorm:"column:game_id;type:varchar(36)"`
	CreatedAt *time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
