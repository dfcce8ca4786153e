package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/movu-app/movu/internal/models"
	"github.com/movu-app/movu/internal/shared"
)

// FavoriteCacheRepository implements [models.Repository] for [models.CachedFavorite] rows.
//
// The cache mirrors the server-backed favorites list for fast dashboard reads.
// It is never an independent dataset: [FavoriteCacheRepository.ReplaceAll]
// swaps a user's rows wholesale after every successful server mutation.
type FavoriteCacheRepository struct {
	db *sql.DB
}

// NewFavoriteCacheRepository creates a new [FavoriteCacheRepository] with the given database connection
func NewFavoriteCacheRepository(db *sql.DB) *FavoriteCacheRepository {
	return &FavoriteCacheRepository{db: db}
}

// Create inserts a new cache row with generated ID and sequence
func (r *FavoriteCacheRepository) Create(fav *models.CachedFavorite) error {
	sequence, err := NextSequence(r.db, "favorite_cache")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	fav.SetID(id)

	if err := fav.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	videoJSON, err := json.Marshal(fav.Video())
	if err != nil {
		return fmt.Errorf("failed to encode video snapshot: %w", err)
	}

	query := `
		INSERT INTO favorite_cache (id, sequence, user_id, video_id, video_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, id, sequence, fav.UserID(), fav.VideoID(), string(videoJSON), fav.CreatedAt(), fav.UpdatedAt())
	if err != nil {
		// A soft-deleted row still occupies UNIQUE (user_id, video_id);
		// revive it instead of failing.
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return r.revive(fav, sequence, string(videoJSON))
		}
		return fmt.Errorf("failed to insert cached favorite: %w", err)
	}

	return nil
}

// revive clears the soft delete on an existing (user, video) row and takes
// over its ID, keeping the new sequence and video snapshot.
func (r *FavoriteCacheRepository) revive(fav *models.CachedFavorite, sequence int, videoJSON string) error {
	query := `
		UPDATE favorite_cache
		SET deleted_at = NULL, sequence = ?, video_json = ?, updated_at = ?
		WHERE user_id = ? AND video_id = ?
		RETURNING id
	`

	var existingID string
	err := r.db.QueryRow(query, sequence, videoJSON, fav.UpdatedAt(), fav.UserID(), fav.VideoID()).Scan(&existingID)
	if err != nil {
		return fmt.Errorf("failed to revive cached favorite: %w", err)
	}

	fav.SetID(existingID)
	return nil
}

// Get retrieves a cache row by ID, excluding soft-deleted rows
func (r *FavoriteCacheRepository) Get(id string) (*models.CachedFavorite, error) {
	query := `
		SELECT id, sequence, user_id, video_id, video_json, created_at, updated_at, deleted_at
		FROM favorite_cache
		WHERE id = ? AND deleted_at IS NULL
	`

	fav, err := scanCachedFavorite(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", shared.ErrFavoriteNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query cached favorite: %w", err)
	}

	return fav, nil
}

// GetByPair retrieves a cache row by its (user, video) identity pair.
func (r *FavoriteCacheRepository) GetByPair(userID, videoID string) (*models.CachedFavorite, error) {
	query := `
		SELECT id, sequence, user_id, video_id, video_json, created_at, updated_at, deleted_at
		FROM favorite_cache
		WHERE user_id = ? AND video_id = ? AND deleted_at IS NULL
	`

	fav, err := scanCachedFavorite(r.db.QueryRow(query, userID, videoID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s/%s", shared.ErrFavoriteNotFound, userID, videoID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query cached favorite: %w", err)
	}

	return fav, nil
}

// Update modifies an existing cache row
func (r *FavoriteCacheRepository) Update(fav *models.CachedFavorite) error {
	if err := fav.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	videoJSON, err := json.Marshal(fav.Video())
	if err != nil {
		return fmt.Errorf("failed to encode video snapshot: %w", err)
	}

	now := time.Now()
	fav.SetUpdatedAt(now)

	query := `
		UPDATE favorite_cache
		SET video_json = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, string(videoJSON), now, fav.ID())
	if err != nil {
		return fmt.Errorf("failed to update cached favorite: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrFavoriteNotFound, fav.ID())
	}

	return nil
}

// Delete soft-deletes a cache row by ID
func (r *FavoriteCacheRepository) Delete(id string) error {
	query := `
		UPDATE favorite_cache
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete cached favorite: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrFavoriteNotFound, id)
	}

	return nil
}

// DeleteByPair soft-deletes a cache row by its (user, video) identity pair.
func (r *FavoriteCacheRepository) DeleteByPair(userID, videoID string) error {
	query := `
		UPDATE favorite_cache
		SET deleted_at = ?
		WHERE user_id = ? AND video_id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, time.Now(), userID, videoID)
	if err != nil {
		return fmt.Errorf("failed to delete cached favorite: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s/%s", shared.ErrFavoriteNotFound, userID, videoID)
	}

	return nil
}

// List retrieves all cache rows matching the given criteria, excluding soft-deleted rows
func (r *FavoriteCacheRepository) List(criteria map[string]any) ([]*models.CachedFavorite, error) {
	query := `
		SELECT id, sequence, user_id, video_id, video_json, created_at, updated_at, deleted_at
		FROM favorite_cache
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if userID, ok := criteria["user_id"].(string); ok && userID != "" {
		query += " AND user_id = ?"
		args = append(args, userID)
	}
	if videoID, ok := criteria["video_id"].(string); ok && videoID != "" {
		query += " AND video_id = ?"
		args = append(args, videoID)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cached favorites: %w", err)
	}
	defer rows.Close()

	var favorites []*models.CachedFavorite
	for rows.Next() {
		fav, err := scanCachedFavorite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cached favorite: %w", err)
		}
		favorites = append(favorites, fav)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return favorites, nil
}

// ListByUser retrieves a user's cached favorites in sequence order.
func (r *FavoriteCacheRepository) ListByUser(userID string) ([]*models.CachedFavorite, error) {
	return r.List(map[string]any{"user_id": userID})
}

// ReplaceAll swaps a user's cache rows for the server's current favorites
// inside one transaction. The server ordering is preserved via fresh
// sequence numbers.
func (r *FavoriteCacheRepository) ReplaceAll(userID string, favorites []models.Favorite) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM favorite_cache WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	now := time.Now()
	for i, fav := range favorites {
		videoJSON, err := json.Marshal(fav.Video)
		if err != nil {
			return fmt.Errorf("failed to encode video snapshot: %w", err)
		}

		var sequence int
		if err := tx.QueryRow(`
			UPDATE favorite_cache_sequence SET value = value + 1 WHERE id = 1
			RETURNING value
		`).Scan(&sequence); err != nil {
			return fmt.Errorf("failed to generate sequence: %w", err)
		}

		_, err = tx.Exec(`
			INSERT INTO favorite_cache (id, sequence, user_id, video_id, video_json, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, shared.GenerateID(), sequence, userID, fav.VideoID, string(videoJSON), now, now)
		if err != nil {
			return fmt.Errorf("failed to insert favorite %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cache refresh: %w", err)
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCachedFavorite(row rowScanner) (*models.CachedFavorite, error) {
	var (
		id        string
		sequence  int
		userID    string
		videoID   string
		videoJSON string
		createdAt time.Time
		updatedAt time.Time
		deletedAt sql.NullTime
	)

	if err := row.Scan(&id, &sequence, &userID, &videoID, &videoJSON, &createdAt, &updatedAt, &deletedAt); err != nil {
		return nil, err
	}

	var video models.Video
	if err := json.Unmarshal([]byte(videoJSON), &video); err != nil {
		return nil, fmt.Errorf("failed to decode video snapshot: %w", err)
	}

	fav := models.NewCachedFavorite(sequence, userID, videoID, video)
	fav.SetID(id)
	fav.SetCreatedAt(createdAt)
	fav.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		fav.SetDeletedAt(&deletedAt.Time)
	}

	return fav, nil
}
