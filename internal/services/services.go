// package services defines interface Service for interacting with the Movu HTTP API
package services

import (
	"context"

	"github.com/movu-app/movu/internal/models"
)

// Service defines the client contract against the Movu backend.
type Service interface {
	// Login exchanges credentials for a session. The returned result carries
	// the server message and the authenticated user's identifier.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// Register creates a new account and returns the created user.
	Register(ctx context.Context, input RegisterInput) (*models.User, error)

	// User retrieves a user by ID. Returns nil without error when the backend
	// reports no such user.
	User(ctx context.Context, id string) (*models.User, error)

	// UpdateUser applies a partial update and returns the updated user.
	UpdateUser(ctx context.Context, id string, patch UserPatch) (*models.User, error)

	// DeleteUser deletes the account. Degrades to false on any failure.
	DeleteUser(ctx context.Context, id string) bool

	// RequestPasswordReset starts the two-phase reset flow; the server sends
	// an out-of-band link. Returns the server message.
	RequestPasswordReset(ctx context.Context, email string) (string, error)

	// ConfirmPasswordReset completes the reset with the token from the link.
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) (string, error)

	// Favorites lists the user's favorites, ordered by the server.
	// Always returns a non-nil slice.
	Favorites(ctx context.Context, userID string) ([]models.Favorite, error)

	// AddFavorite persists the (user, video) pair with its video snapshot.
	AddFavorite(ctx context.Context, userID string, video models.Video) (*models.Favorite, error)

	// RemoveFavorite deletes the favorite by identity pair.
	RemoveFavorite(ctx context.Context, userID, videoID string) error

	// CheckFavorite reports whether the (user, video) pair is favorited.
	CheckFavorite(ctx context.Context, userID, videoID string) (bool, error)

	// SearchVideos queries the Pexels catalog proxy.
	SearchVideos(ctx context.Context, query string, perPage int) ([]models.Video, error)

	// Comments lists the global comment feed.
	Comments(ctx context.Context) ([]models.Comment, error)

	// AddComment posts a comment under the given author label.
	AddComment(ctx context.Context, user, text string) (*models.Comment, error)

	// DeleteComment removes a comment by ID.
	DeleteComment(ctx context.Context, commentID string) error

	// Name returns the name of the backend this service talks to.
	Name() string
}

// LoginResult is the response payload of a successful login.
type LoginResult struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// UserPatch carries a partial user update; nil fields are omitted.
type UserPatch struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Age       *int    `json:"age,omitempty"`
	Email     *string `json:"email,omitempty"`
}
