package mariadb

import (
	"fmt"
	"time"

	"gamecatalog/internal/config"
	"gamecatalog/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Storage struct {
	DB *gorm.DB
}

func New(cfg config.Database) (*Storage, error) {
	const op = "storage.mariadb.New"

	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Storage) Migrate() error {
	const op = "storage.mariadb.Migrate"

	queries := []string{
		`CREATE TABLE IF NOT EXISTS games (
			id VARCHAR(36) PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			release_date DATE,
			rating DECIMAL(3,1) DEFAULT 0,
			metacritic_score INT DEFAULT 0,
			platforms JSON,
			genres JSON,
			developer VARCHAR(255),
			publisher VARCHAR(255),
			cover_image VARCHAR(500),
			screenshots JSON,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS favorites (
			id VARCHAR(36) PRIMARY KEY,
			user_id VARCHAR(64) NOT NULL,
			game_id VARCHAR(36) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_user_game (user_id, game_id),
			FOREIGN KEY (game_id) REFERENCES games(id) ON DELETE CASCADE
		);`,
	}

	for _, query := range queries {
		if err := s.DB.Exec(query).Error; err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

// SeedGames inserts the fixture set into an empty games table.
func (s *Storage) SeedGames(games []models.Game) error {
	const op = "storage.mariadb.SeedGames"

	var count int64
	if err := s.DB.Model(&models.Game{}).Count(&count).Error; err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	for i := range games {
		games[i].CreatedAt = &now
		games[i].UpdatedAt = &now
	}

	if err := s.DB.Create(&games).Error; err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
