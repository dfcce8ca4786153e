package tasks

import (
	"context"
	"fmt"

	"github.com/movu-app/movu/internal/models"
	"github.com/movu-app/movu/internal/services"
	"github.com/movu-app/movu/internal/shared"
)

// FavoriteCache is the subset of the cache repository the engine needs.
// Implemented by repositories.FavoriteCacheRepository. A nil cache disables
// local mirroring without disabling any server operation.
type FavoriteCache interface {
	ReplaceAll(userID string, favorites []models.Favorite) error
	ListByUser(userID string) ([]*models.CachedFavorite, error)
}

// FavoritesEngine coordinates favorites operations between the Movu API and
// the local cache. The server is the sole source of truth; the cache is an
// optimistic-read mirror replaced after every successful mutation.
type FavoritesEngine struct {
	api   services.Service
	cache FavoriteCache
}

// NewFavoritesEngine creates an engine over the given API client and optional cache.
func NewFavoritesEngine(api services.Service, cache FavoriteCache) *FavoritesEngine {
	return &FavoritesEngine{api: api, cache: cache}
}

// sendProgress sends an update without blocking; updates are dropped when the
// consumer (or channel) is absent or slow.
func (e *FavoritesEngine) sendProgress(prog chan<- ProgressUpdate, update ProgressUpdate) {
	if prog == nil {
		return
	}
	select {
	case prog <- update:
	default:
	}
}

// Refresh fetches the server's favorites for the user and replaces the local
// cache rows wholesale. Returns the server list.
func (e *FavoritesEngine) Refresh(ctx context.Context, userID string, prog chan<- ProgressUpdate) ([]models.Favorite, error) {
	if e.api == nil {
		return nil, fmt.Errorf("%w: API client not initialized", shared.ErrServiceUnavailable)
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: user id", shared.ErrMissingArgument)
	}

	e.sendProgress(prog, fetchFavoritesUpdate(1, 2))

	favorites, err := e.api.Favorites(ctx, userID)
	if err != nil {
		return nil, err
	}

	e.sendProgress(prog, fetchedFavoritesUpdate(1, 2, len(favorites)))

	if e.cache != nil {
		e.sendProgress(prog, refreshCacheUpdate(2, 2, len(favorites)))
		if err := e.cache.ReplaceAll(userID, favorites); err != nil {
			return nil, fmt.Errorf("failed to refresh favorites cache: %w", err)
		}
	}

	return favorites, nil
}

// Cached returns the locally cached favorites for the user without touching
// the network. Returns an empty slice when no cache is configured.
func (e *FavoritesEngine) Cached(userID string) ([]models.Favorite, error) {
	if e.cache == nil {
		return []models.Favorite{}, nil
	}

	rows, err := e.cache.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	favorites := make([]models.Favorite, 0, len(rows))
	for _, row := range rows {
		favorites = append(favorites, row.AsFavorite())
	}
	return favorites, nil
}

// Add persists the favorite on the server, then refreshes the cache.
// A failed server call leaves the cache untouched.
func (e *FavoritesEngine) Add(ctx context.Context, userID string, video models.Video, prog chan<- ProgressUpdate) (*models.Favorite, error) {
	if e.api == nil {
		return nil, fmt.Errorf("%w: API client not initialized", shared.ErrServiceUnavailable)
	}

	e.sendProgress(prog, mutateUpdate(1, 2, "Adding favorite", video.Title))

	favorite, err := e.api.AddFavorite(ctx, userID, video)
	if err != nil {
		return nil, err
	}

	if _, err := e.Refresh(ctx, userID, prog); err != nil {
		return favorite, fmt.Errorf("favorite added but cache refresh failed: %w", err)
	}

	return favorite, nil
}

// Remove deletes the favorite on the server, then refreshes the cache.
func (e *FavoritesEngine) Remove(ctx context.Context, userID, videoID string, prog chan<- ProgressUpdate) error {
	if e.api == nil {
		return fmt.Errorf("%w: API client not initialized", shared.ErrServiceUnavailable)
	}

	e.sendProgress(prog, mutateUpdate(1, 2, "Removing favorite", videoID))

	if err := e.api.RemoveFavorite(ctx, userID, videoID); err != nil {
		return err
	}

	if _, err := e.Refresh(ctx, userID, prog); err != nil {
		return fmt.Errorf("favorite removed but cache refresh failed: %w", err)
	}

	return nil
}

// Toggle checks membership for the (user, video) pair and applies the
// opposite mutation. Reports whether the video is a favorite afterwards.
func (e *FavoritesEngine) Toggle(ctx context.Context, userID string, video models.Video, prog chan<- ProgressUpdate) (bool, error) {
	if e.api == nil {
		return false, fmt.Errorf("%w: API client not initialized", shared.ErrServiceUnavailable)
	}

	e.sendProgress(prog, checkMembershipUpdate(1, 3, video.ID))

	isFavorite, err := e.api.CheckFavorite(ctx, userID, video.ID)
	if err != nil {
		return false, err
	}

	if isFavorite {
		if err := e.Remove(ctx, userID, video.ID, prog); err != nil {
			return true, err
		}
		return false, nil
	}

	if _, err := e.Add(ctx, userID, video, prog); err != nil {
		return false, err
	}
	return true, nil
}
