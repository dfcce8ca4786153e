// Movu API implementation of [Service]
//
// Endpoint paths follow the backend's /api/v1 REST surface.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/movu-app/movu/internal/models"
	"github.com/movu-app/movu/internal/shared"
	"golang.org/x/time/rate"
)

const apiPrefix = "/api/v1"

// resetPath is the primary password-reset endpoint; legacyResetPath is the
// older path some deployments still serve.
const (
	resetPath        = "/auth/reset-password"
	resetConfirmPath = "/auth/reset-password/confirm"
	legacyResetPath  = "/password/request"
)

// MovuService implements [Service] against a Movu backend.
type MovuService struct {
	baseURL       string
	httpClient    *http.Client
	searchLimiter *rate.Limiter
}

// NewMovuService creates a Movu API client for the given base URL.
// searchRate caps catalog searches per second; <= 0 selects the default of 5.
func NewMovuService(baseURL string, client *http.Client, searchRate float64) *MovuService {
	if baseURL == "" {
		baseURL = "http://localhost:3001"
	}
	if client == nil {
		client = http.DefaultClient
	}
	if searchRate <= 0 {
		searchRate = 5.0
	}

	return &MovuService{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    client,
		searchLimiter: rate.NewLimiter(rate.Limit(searchRate), 1),
	}
}

func (s *MovuService) Name() string {
	return "Movu"
}

// apiError mirrors the backend's error body. Some handlers use "error",
// others "message".
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e apiError) text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

// doRequest performs an HTTP request against the Movu API and decodes the
// JSON response into result when non-nil.
//
// Transport failures wrap [shared.ErrAPIRequest]; non-2xx responses surface
// the server-supplied error text with a status-code fallback.
func (s *MovuService) doRequest(ctx context.Context, method, endpoint string, body any, result any) error {
	apiURL := s.baseURL + apiPrefix + endpoint

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var serverErr apiError
		if json.Unmarshal(data, &serverErr) == nil && serverErr.text() != "" {
			return fmt.Errorf("%s", serverErr.text())
		}
		return fmt.Errorf("movu API error: status %d", resp.StatusCode)
	}

	if result != nil && len(data) > 0 {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// isNotFound detects the status-code fallback error for a 404 answer.
// Used to fall back to the legacy reset path.
func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "status 404")
}

// Login exchanges credentials for a session.
func (s *MovuService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	payload := map[string]string{"email": email, "password": password}

	var result LoginResult
	if err := s.doRequest(ctx, http.MethodPost, "/sessions/login", payload, &result); err != nil {
		return nil, err
	}
	if result.UserID == "" {
		return nil, shared.ErrAuthFailed
	}
	return &result, nil
}

// Register creates a new account.
func (s *MovuService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	var user models.User
	if err := s.doRequest(ctx, http.MethodPost, "/users", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// User retrieves a user by ID. The backend answers null for unknown users;
// that decodes to the zero value, reported here as nil.
func (s *MovuService) User(ctx context.Context, id string) (*models.User, error) {
	var user *models.User
	endpoint := fmt.Sprintf("/users/%s", url.PathEscape(id))
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &user); err != nil {
		return nil, err
	}
	if user == nil || user.ID == "" {
		return nil, nil
	}
	return user, nil
}

// UpdateUser applies a partial update.
func (s *MovuService) UpdateUser(ctx context.Context, id string, patch UserPatch) (*models.User, error) {
	var user models.User
	endpoint := fmt.Sprintf("/users/%s", url.PathEscape(id))
	if err := s.doRequest(ctx, http.MethodPut, endpoint, patch, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser deletes the account, degrading to false on any failure.
func (s *MovuService) DeleteUser(ctx context.Context, id string) bool {
	endpoint := fmt.Sprintf("/users/%s", url.PathEscape(id))
	return s.doRequest(ctx, http.MethodDelete, endpoint, nil, nil) == nil
}

// RequestPasswordReset starts the reset flow. Deployments that predate the
// /auth prefix answer 404 there; those get one retry on the legacy path.
func (s *MovuService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	payload := map[string]string{"email": email}

	var result struct {
		Message string `json:"message"`
	}
	err := s.doRequest(ctx, http.MethodPost, resetPath, payload, &result)
	if isNotFound(err) {
		err = s.doRequest(ctx, http.MethodPost, legacyResetPath, payload, &result)
	}
	if err != nil {
		return "", err
	}
	return result.Message, nil
}

// ConfirmPasswordReset completes the reset with the token from the link.
func (s *MovuService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) (string, error) {
	payload := map[string]string{"token": token, "newPassword": newPassword}

	var result struct {
		Message string `json:"message"`
	}
	if err := s.doRequest(ctx, http.MethodPost, resetConfirmPath, payload, &result); err != nil {
		return "", err
	}
	return result.Message, nil
}

// Favorites lists the user's favorites. Always returns a non-nil slice.
func (s *MovuService) Favorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	endpoint := fmt.Sprintf("/favorites/%s", url.PathEscape(userID))
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &favorites); err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []models.Favorite{}
	}
	return favorites, nil
}

// AddFavorite persists the (user, video) pair with its denormalized snapshot.
func (s *MovuService) AddFavorite(ctx context.Context, userID string, video models.Video) (*models.Favorite, error) {
	payload := map[string]any{
		"userId":    userID,
		"videoId":   video.ID,
		"videoData": video,
	}

	var favorite models.Favorite
	if err := s.doRequest(ctx, http.MethodPost, "/favorites", payload, &favorite); err != nil {
		return nil, err
	}
	return &favorite, nil
}

// RemoveFavorite deletes by identity pair. The backend expects the pair in the
// DELETE body.
func (s *MovuService) RemoveFavorite(ctx context.Context, userID, videoID string) error {
	payload := map[string]string{"userId": userID, "videoId": videoID}
	return s.doRequest(ctx, http.MethodDelete, "/favorites", payload, nil)
}

// CheckFavorite reports membership for the (user, video) pair.
func (s *MovuService) CheckFavorite(ctx context.Context, userID, videoID string) (bool, error) {
	endpoint := fmt.Sprintf("/favorites/check/favorite?userId=%s&videoId=%s",
		url.QueryEscape(userID), url.QueryEscape(videoID))

	var result struct {
		IsFavorite bool `json:"isFavorite"`
	}
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &result); err != nil {
		return false, err
	}
	return result.IsFavorite, nil
}

// pexelsVideo mirrors the Pexels proxy's video schema.
type pexelsVideo struct {
	ID       int    `json:"id"`
	URL      string `json:"url"`
	Image    string `json:"image"`
	Duration int    `json:"duration"`
	User     struct {
		Name string `json:"name"`
	} `json:"user"`
	VideoFiles    []models.VideoFile    `json:"video_files"`
	VideoPictures []models.VideoPicture `json:"video_pictures"`
}

// SearchVideos queries the Pexels catalog proxy. Requests pass through the
// client-side rate limiter.
func (s *MovuService) SearchVideos(ctx context.Context, query string, perPage int) ([]models.Video, error) {
	if perPage <= 0 {
		perPage = 15
	}
	if perPage > 80 {
		perPage = 80
	}

	if err := s.searchLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	endpoint := fmt.Sprintf("/pexels/videos/search?query=%s&per_page=%d",
		url.QueryEscape(query), perPage)

	var result struct {
		Videos []pexelsVideo `json:"videos"`
	}
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &result); err != nil {
		return nil, err
	}

	videos := make([]models.Video, 0, len(result.Videos))
	for _, pv := range result.Videos {
		videos = append(videos, models.Video{
			ID:       strconv.Itoa(pv.ID),
			Title:    titleFromURL(pv.URL),
			Image:    pv.Image,
			Duration: pv.Duration,
			Author:   pv.User.Name,
			Files:    pv.VideoFiles,
			Pictures: pv.VideoPictures,
		})
	}

	return videos, nil
}

// titleFromURL derives a readable title from a Pexels page URL slug,
// e.g. ".../video/aerial-view-of-a-beach-854122/" -> "Aerial View Of A Beach".
// Pexels videos carry no title field of their own.
func titleFromURL(pageURL string) string {
	trimmed := strings.TrimRight(pageURL, "/")
	slug := trimmed[strings.LastIndex(trimmed, "/")+1:]

	words := strings.Split(slug, "-")
	// Drop the trailing numeric ID segment.
	if len(words) > 1 {
		if _, err := strconv.Atoi(words[len(words)-1]); err == nil {
			words = words[:len(words)-1]
		}
	}

	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}

// Comments lists the global comment feed. Always returns a non-nil slice.
func (s *MovuService) Comments(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.doRequest(ctx, http.MethodGet, "/comments", nil, &comments); err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// AddComment posts a comment. The endpoint is global; no video identifier is
// part of the payload.
func (s *MovuService) AddComment(ctx context.Context, user, text string) (*models.Comment, error) {
	payload := map[string]string{"user": user, "text": text}

	var comment models.Comment
	if err := s.doRequest(ctx, http.MethodPost, "/comments", payload, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment by ID.
func (s *MovuService) DeleteComment(ctx context.Context, commentID string) error {
	payload := map[string]string{"commentId": commentID}
	return s.doRequest(ctx, http.MethodDelete, "/comments", payload, nil)
}

var _ Service = (*MovuService)(nil)
