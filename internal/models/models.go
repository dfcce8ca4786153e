package models

import (
	"fmt"
	"time"
)

// Model defines the base interface for all locally persisted models.
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	CreatedAt() time.Time // CreatedAt returns when this model was created
	UpdatedAt() time.Time // UpdatedAt returns when this model was last updated
	Validate() error      // Validate checks if the model's data is valid and returns an error if not
}

// Repository defines the interface for local data access operations.
type Repository[T Model] interface {
	Create(model T) error                      // Create inserts a new model into the database
	Get(id string) (T, error)                  // Get retrieves a model by its ID
	Update(model T) error                      // Update modifies an existing model in the database
	Delete(id string) error                    // Delete removes a model from the database by its ID
	List(criteria map[string]any) ([]T, error) // List retrieves all models matching the given criteria
}

// User represents a Movu account as reported by the backend.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Age       int       `json:"age"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FullName returns the display name for the user.
func (u User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

// VideoFile is a single playable rendition of a video.
type VideoFile struct {
	Link     string `json:"link"`
	Quality  string `json:"quality"`
	FileType string `json:"file_type"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// VideoPicture is a preview frame for a video.
type VideoPicture struct {
	Picture string `json:"picture"`
	Nr      int    `json:"nr"`
}

// Video is the denormalized catalog snapshot stored alongside a favorite.
// Sourced from the Pexels proxy; never owned by this application.
type Video struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Image    string         `json:"image"`
	Duration int            `json:"duration"`
	Author   string         `json:"author"`
	Files    []VideoFile    `json:"video_files"`
	Pictures []VideoPicture `json:"video_pictures"`
}

// BestFile returns the preferred playable rendition: the first HD file, falling
// back to the first file of any quality. Returns false when no file exists.
func (v Video) BestFile() (VideoFile, bool) {
	if len(v.Files) == 0 {
		return VideoFile{}, false
	}
	for _, f := range v.Files {
		if f.Quality == "hd" {
			return f, true
		}
	}
	return v.Files[0], true
}

// Favorite pairs a user with a video and its denormalized snapshot.
// At most one favorite exists per (user, video) pair; the backend enforces this.
type Favorite struct {
	UserID  string `json:"userId,omitempty"`
	VideoID string `json:"videoId"`
	Video   Video  `json:"videoData"`
}

// Comment represents a comment on the video page.
//
// The backend's comment endpoint is global: no video identifier appears in the
// payload, so comments are not scoped per video.
type Comment struct {
	ID   string `json:"id"`
	User string `json:"user"`
	Text string `json:"text"`
}

// Session is the locally stored current-user identity: the user identifier and
// a cached, possibly stale profile snapshot.
type Session struct {
	UserID    string
	User      *User
	UpdatedAt time.Time
}

// CachedFavorite is a server-backed favorite mirrored into the local cache for
// offline listing. The server remains the source of truth; rows are replaced
// wholesale on every refresh.
type CachedFavorite struct {
	id        string
	sequence  int
	userID    string
	videoID   string
	video     Video
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

// NewCachedFavorite creates a cache row for the given favorite.
func NewCachedFavorite(sequence int, userID, videoID string, video Video) *CachedFavorite {
	now := time.Now()
	return &CachedFavorite{
		sequence:  sequence,
		userID:    userID,
		videoID:   videoID,
		video:     video,
		createdAt: now,
		updatedAt: now,
	}
}

var _ Model = (*CachedFavorite)(nil)

func (f *CachedFavorite) ID() string            { return f.id }
func (f *CachedFavorite) Sequence() int         { return f.sequence }
func (f *CachedFavorite) UserID() string        { return f.userID }
func (f *CachedFavorite) VideoID() string       { return f.videoID }
func (f *CachedFavorite) Video() Video          { return f.video }
func (f *CachedFavorite) CreatedAt() time.Time  { return f.createdAt }
func (f *CachedFavorite) UpdatedAt() time.Time  { return f.updatedAt }
func (f *CachedFavorite) DeletedAt() *time.Time { return f.deletedAt }

func (f *CachedFavorite) SetID(id string)           { f.id = id }
func (f *CachedFavorite) SetUpdatedAt(t time.Time)  { f.updatedAt = t }
func (f *CachedFavorite) SetDeletedAt(t *time.Time) { f.deletedAt = t }
func (f *CachedFavorite) SetCreatedAt(t time.Time)  { f.createdAt = t }

// Validate checks that the identity pair is present.
func (f *CachedFavorite) Validate() error {
	if f.userID == "" {
		return fmt.Errorf("cached favorite requires a user id")
	}
	if f.videoID == "" {
		return fmt.Errorf("cached favorite requires a video id")
	}
	return nil
}

// AsFavorite converts the cache row back to the API-facing DTO.
func (f *CachedFavorite) AsFavorite() Favorite {
	return Favorite{UserID: f.userID, VideoID: f.videoID, Video: f.video}
}
