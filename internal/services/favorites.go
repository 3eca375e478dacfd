package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gamecatalog/internal/catalog"
	"gamecatalog/internal/models"
	"gamecatalog/internal/storage"
	"gamecatalog/internal/storage/localcache"
	"gamecatalog/internal/storage/mariadb"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// errRemoteUnavailable stands in for a remote failure when the service runs
// without a relational store at all (memory catalog deployments).
var errRemoteUnavailable = errors.New("remote favorites store unavailable")

// FavoritesService tracks per-user favorites in the relational store with a
// local SQLite mirror as fallback. Favorites are non-critical, user-scoped
// data: when the remote store is unreachable reads answer from the cache and
// writes still land there, so availability wins over strict consistency.
type FavoritesService struct {
	storage *mariadb.Storage
	cache   *localcache.Cache
	source  catalog.Source
	log     *slog.Logger
}

func NewFavoritesService(s *mariadb.Storage, cache *localcache.Cache, source catalog.Source, log *slog.Logger) *FavoritesService {
	return &FavoritesService{
		storage: s,
		cache:   cache,
		source:  source,
		log:     log,
	}
}

// List returns a user's favorites together with the referenced games.
func (s *FavoritesService) List(userID string) ([]models.Favorite, []models.Game, error) {
	const op = "services.favorites.List"

	favorites, err := s.remoteList(userID)
	if err != nil {
		s.log.Warn("remote favorites read failed, using local cache",
			slog.String("operation", op),
			slog.String("error", err.Error()))

		if s.cache == nil {
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}

		favorites, err = s.cache.List(userID)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
	} else if s.cache != nil {
		if cerr := s.cache.ReplaceAll(userID, favorites); cerr != nil {
			s.log.Warn("favorites cache resync failed",
				slog.String("operation", op),
				slog.String("error", cerr.Error()))
		}
	}

	ids := make([]string, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.GameID)
	}

	games, err := s.source.GetByIDs(ids)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return favorites, games, nil
}

// FavoriteGames resolves the user's favorites to game records, the reference
// set for relevance scoring.
func (s *FavoritesService) FavoriteGames(userID string) ([]models.Game, error) {
	_, games, err := s.List(userID)
	return games, err
}

// Add marks a game as favorite. Re-adding an existing pair returns the
// stored favorite instead of failing; a failed remote write still updates
// the local cache and reports success.
func (s *FavoritesService) Add(userID, gameID string) (*models.Favorite, error) {
	const op = "services.favorites.Add"

	existing, err := s.remoteGet(userID, gameID)
	if err == nil {
		s.cachePut(op, *existing)
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, errRemoteUnavailable) {
		s.log.Warn("remote favorites lookup failed",
			slog.String("operation", op),
			slog.String("error", err.Error()))
	}

	now := time.Now()
	favorite := models.Favorite{
		ID:        uuid.New().String(),
		UserID:    userID,
		GameID:    gameID,
		CreatedAt: &now,
	}

	if err := s.remoteCreate(&favorite); err != nil {
		if s.cache == nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		s.log.Warn("remote favorites write failed, keeping local copy",
			slog.String("operation", op),
			slog.String("error", err.Error()))
	}

	s.cachePut(op, favorite)
	return &favorite, nil
}

// Remove deletes a pair. Removing a pair that does not exist returns
// storage.ErrNotFound, distinct from a successful removal.
func (s *FavoritesService) Remove(userID, gameID string) error {
	const op = "services.favorites.Remove"

	removed, err := s.remoteRemove(userID, gameID)
	if err != nil {
		s.log.Warn("remote favorites delete failed, using local cache",
			slog.String("operation", op),
			slog.String("error", err.Error()))

		if s.cache == nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		removed, err = s.cache.Remove(userID, gameID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if !removed {
			return storage.ErrNotFound
		}
		return nil
	}

	if s.cache != nil {
		if _, cerr := s.cache.Remove(userID, gameID); cerr != nil {
			s.log.Warn("favorites cache delete failed",
				slog.String("operation", op),
				slog.String("error", cerr.Error()))
		}
	}

	if !removed {
		return storage.ErrNotFound
	}

	return nil
}

// IsFavorite checks pair membership.
func (s *FavoritesService) IsFavorite(userID, gameID string) (bool, error) {
	const op = "services.favorites.IsFavorite"

	_, err := s.remoteGet(userID, gameID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}

	s.log.Warn("remote favorites check failed, using local cache",
		slog.String("operation", op),
		slog.String("error", err.Error()))

	if s.cache == nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return s.cache.Exists(userID, gameID)
}

func (s *FavoritesService) remoteList(userID string) ([]models.Favorite, error) {
	if s.storage == nil {
		return nil, errRemoteUnavailable
	}

	favorites := []models.Favorite{}
	err := s.storage.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}

	return favorites, nil
}

func (s *FavoritesService) remoteGet(userID, gameID string) (*models.Favorite, error) {
	if s.storage == nil {
		return nil, errRemoteUnavailable
	}

	var f models.Favorite
	err := s.storage.DB.
		Where("user_id = ? AND game_id = ?", userID, gameID).
		First(&f).Error
	if err != nil {
		return nil, err
	}

	return &f, nil
}

func (s *FavoritesService) remoteCreate(f *models.Favorite) error {
	if s.storage == nil {
		return errRemoteUnavailable
	}
	return s.storage.DB.Create(f).Error
}

func (s *FavoritesService) remoteRemove(userID, gameID string) (bool, error) {
	if s.storage == nil {
		return false, errRemoteUnavailable
	}

	res := s.storage.DB.
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

func (s *FavoritesService) cachePut(op string, favorite models.Favorite) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Put(favorite); err != nil {
		s.log.Warn("favorites cache write failed",
			slog.String("operation", op),
			slog.String("error", err.Error()))
	}
}
