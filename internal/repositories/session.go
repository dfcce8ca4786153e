package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/movu-app/movu/internal/models"
	"github.com/movu-app/movu/internal/shared"
)

// SessionRepository persists the single current-user session row.
//
// Lifecycle: [SessionRepository.Set] on successful login, [SessionRepository.Clear]
// on account deletion. A plain logout does not touch the row. No expiry or
// multi-process invalidation is handled.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new [SessionRepository] with the given database connection
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Set stores the current session, replacing any previous one.
// The user snapshot is denormalized JSON and may go stale; the backend is the
// source of truth.
func (r *SessionRepository) Set(userID string, user *models.User) error {
	if userID == "" {
		return fmt.Errorf("session requires a user id")
	}

	snapshot, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user snapshot: %w", err)
	}

	query := `
		INSERT INTO session (id, user_id, user_json, updated_at) VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET user_id = excluded.user_id,
			user_json = excluded.user_json, updated_at = excluded.updated_at
	`

	if _, err := r.db.Exec(query, userID, string(snapshot), time.Now()); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

// Current returns the stored session, or [shared.ErrNoSession] when none exists.
func (r *SessionRepository) Current() (*models.Session, error) {
	query := `SELECT user_id, user_json, updated_at FROM session WHERE id = 1`

	var (
		userID    string
		userJSON  string
		updatedAt time.Time
	)

	err := r.db.QueryRow(query).Scan(&userID, &userJSON, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, shared.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	session := &models.Session{UserID: userID, UpdatedAt: updatedAt}

	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err == nil && user.ID != "" {
		session.User = &user
	}

	return session, nil
}

// Clear removes the stored session. Clearing an absent session is not an error.
func (r *SessionRepository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM session WHERE id = 1"); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
