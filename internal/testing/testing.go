// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/movu-app/movu/internal/models"
	"github.com/movu-app/movu/internal/services"
)

// MockService is an in-memory test double for [services.Service].
//
// Favorites are kept per user so add/remove/check round-trips behave like the
// real backend. The zero value is usable.
type MockService struct {
	Users     map[string]models.User
	favorites map[string][]models.Favorite
	comments  []models.Comment
	Videos    []models.Video

	LoginErr error
	FailAll  bool
}

func (m *MockService) Name() string { return "mock" }

func (m *MockService) fail() error {
	if m.FailAll {
		return errors.New("mock failure")
	}
	return nil
}

func (m *MockService) Login(ctx context.Context, email, password string) (*services.LoginResult, error) {
	if m.LoginErr != nil {
		return nil, m.LoginErr
	}
	if err := m.fail(); err != nil {
		return nil, err
	}
	for id, u := range m.Users {
		if u.Email == email {
			return &services.LoginResult{Message: "ok", UserID: id}, nil
		}
	}
	return &services.LoginResult{Message: "ok", UserID: "mock-user"}, nil
}

func (m *MockService) Register(ctx context.Context, input services.RegisterInput) (*models.User, error) {
	if err := m.fail(); err != nil {
		return nil, err
	}
	user := models.User{
		ID:        fmt.Sprintf("user-%d", len(m.Users)+1),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Age:       input.Age,
		Email:     input.Email,
	}
	if m.Users == nil {
		m.Users = map[string]models.User{}
	}
	m.Users[user.ID] = user
	return &user, nil
}

func (m *MockService) User(ctx context.Context, id string) (*models.User, error) {
	if err := m.fail(); err != nil {
		return nil, err
	}
	if u, ok := m.Users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (m *MockService) UpdateUser(ctx context.Context, id string, patch services.UserPatch) (*models.User, error) {
	if err := m.fail(); err != nil {
		return nil, err
	}
	u := m.Users[id]
	if patch.FirstName != nil {
		u.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = *patch.LastName
	}
	if patch.Age != nil {
		u.Age = *patch.Age
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if m.Users == nil {
		m.Users = map[string]models.User{}
	}
	m.Users[id] = u
	return &u, nil
}

func (m *MockService) DeleteUser(ctx context.Context, id string) bool {
	if m.FailAll {
		return false
	}
	delete(m.Users, id)
	return true
}

func (m *MockService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	if err := m.fail(); err != nil {
		return "", err
	}
	return "reset link sent", nil
}

func (m *MockService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) (string, error) {
	if err := m.fail(); err != nil {
		return "", err
	}
	return "password updated", nil
}

func (m *MockService) Favorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	if err := m.fail(); err != nil {
		return nil, err
	}
	favs := m.favorites[userID]
	if favs == nil {
		favs = []models.Favorite{}
	}
	return favs, nil
}

func (m *MockService) AddFavorite(ctx context.Context, userID string, video models.Video) (*models.Favorite, error) {
	if err := m.fail(); err != nil {
		return nil, err
	}
	if m.favorites == nil {
		m.favorites = map[string][]models.Favorite{}
	}
	fav := models.Favorite{UserID: userID, VideoID: video.ID, Video: video}
	m.favorites[userID] = append(m.favorites[userID], fav)
	return &fav, nil
}

func (m *MockService) RemoveFavorite(ctx context.Context, userID, videoID string) error {
	if err := m.fail(); err != nil {
		return err
	}
	favs := m.favorites[userID]
	for i, fav := range favs {
		if fav.VideoID == videoID {
			m.favorites[userID] = append(favs[:i], favs[i+1:]...)
			return nil
		}
	}
	return errors.New("favorite not found")
}

func (m *MockService) CheckFavorite(ctx context.Context, userID, videoID string) (bool, error) {
	if err := m.fail(); err != nil {
		return false, err
	}
	for _, fav := range m.favorites[userID] {
		if fav.VideoID == videoID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockService) SearchVideos(ctx context.Context, query string, perPage int) ([]models.Video, error) {
	if err := m.fail(); err != nil {
		return nil, err
	}
	return m.Videos, nil
}

func (m *MockService) Comments(ctx context.Context) ([]models.Comment, error) {
	if err := m.fail(); err != nil {
		return nil, err
	}
	if m.comments == nil {
		return []models.Comment{}, nil
	}
	return m.comments, nil
}

func (m *MockService) AddComment(ctx context.Context, user, text string) (*models.Comment, error) {
	if err := m.fail(); err != nil {
		return nil, err
	}
	comment := models.Comment{ID: fmt.Sprintf("c-%d", len(m.comments)+1), User: user, Text: text}
	m.comments = append(m.comments, comment)
	return &comment, nil
}

func (m *MockService) DeleteComment(ctx context.Context, commentID string) error {
	if err := m.fail(); err != nil {
		return err
	}
	for i, c := range m.comments {
		if c.ID == commentID {
			m.comments = append(m.comments[:i], m.comments[i+1:]...)
			return nil
		}
	}
	return errors.New("comment not found")
}

var _ services.Service = (*MockService)(nil)

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// FCloser is a ReadCloser that always fails to read
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
