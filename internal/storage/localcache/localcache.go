// Package localcache keeps a SQLite mirror of a user's favorites so the API
// can keep answering when the relational store is unreachable. Writes are
// applied here even when the remote write fails; last write wins.
package localcache

import (
	"database/sql"
	"fmt"
	"time"

	"gamecatalog/internal/models"

	_ "modernc.org/sqlite"
)

type Cache struct {
	conn *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(path string) (*Cache, error) {
	const op = "storage.localcache.Open"

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c := &Cache{conn: conn}
	if err := c.migrate(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (c *Cache) Close() error {
	return c.conn.Close()
}

func (c *Cache) migrate() error {
	_, err := c.conn.Exec(`
		CREATE TABLE IF NOT EXISTS favorites (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			game_id TEXT NOT NULL,
			created_at TEXT,
			UNIQUE(user_id, game_id)
		);
	`)
	return err
}

// Put stores a favorite, keeping the existing row when the pair is already
// cached.
func (c *Cache) Put(f models.Favorite) error {
	const op = "storage.localcache.Put"

	createdAt := ""
	if f.CreatedAt != nil {
		createdAt = f.CreatedAt.UTC().Format(time.RFC3339)
	}

	_, err := c.conn.Exec(
		`INSERT OR IGNORE INTO favorites (id, user_id, game_id, created_at) VALUES (?, ?, ?, ?)`,
		f.ID, f.UserID, f.GameID, createdAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Remove deletes a cached pair and reports whether it was present.
func (c *Cache) Remove(userID, gameID string) (bool, error) {
	const op = "storage.localcache.Remove"

	res, err := c.conn.Exec(
		`DELETE FROM favorites WHERE user_id = ? AND game_id = ?`,
		userID, gameID,
	)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return rows > 0, nil
}

func (c *Cache) Exists(userID, gameID string) (bool, error) {
	const op = "storage.localcache.Exists"

	var one int
	err := c.conn.QueryRow(
		`SELECT 1 FROM favorites WHERE user_id = ? AND game_id = ?`,
		userID, gameID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}

// List returns the cached favorites for a user, newest first.
func (c *Cache) List(userID string) ([]models.Favorite, error) {
	const op = "storage.localcache.List"

	rows, err := c.conn.Query(
		`SELECT id, user_id, game_id, created_at FROM favorites WHERE user_id = ? ORDER BY created_at DESC, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	favorites := []models.Favorite{}
	for rows.Next() {
		var f models.Favorite
		var createdAt string

		if err := rows.Scan(&f.ID, &f.UserID, &f.GameID, &createdAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			f.CreatedAt = &t
		}

		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return favorites, nil
}

// ReplaceAll resyncs a user's cached favorites from an authoritative read.
func (c *Cache) ReplaceAll(userID string, favorites []models.Favorite) error {
	const op = "storage.localcache.ReplaceAll"

	tx, err := c.conn.Begin()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.Exec(`DELETE FROM favorites WHERE user_id = ?`, userID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, f := range favorites {
		createdAt := ""
		if f.CreatedAt != nil {
			createdAt = f.CreatedAt.UTC().Format(time.RFC3339)
		}
		if _, err := tx.Exec(
			`INSERT OR REPLACE INTO favorites (id, user_id, game_id, created_at) VALUES (?, ?, ?, ?)`,
			f.ID, f.UserID, f.GameID, createdAt,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
