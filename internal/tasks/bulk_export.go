package tasks

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/movu-app/movu/internal/formatter"
	"github.com/movu-app/movu/internal/models"
	"github.com/movu-app/movu/internal/shared"
	"golang.org/x/time/rate"
)

// BulkExportOpts contains configuration for favorites exports.
type BulkExportOpts struct {
	Formats    []string // Export formats: json, csv, markdown, txt (default: all)
	OutputDir  string   // Base output directory (default: movu_export_{epoch})
	NumWorkers int      // Concurrent thumbnail workers (default: 5)
	RateLimit  float64  // Thumbnail downloads per second (default: 5)
	Thumbnails bool     // Download thumbnail images alongside the listing
	HTTPClient *http.Client
}

// BulkExportResult summarizes a favorites export.
type BulkExportResult struct {
	OutputDirectory string
	Files           []string // Listing files written
	Thumbnails      int      // Thumbnails downloaded
	ThumbnailErrors []error
	TotalFavorites  int
}

type thumbnailJob struct {
	index    int
	favorite models.Favorite
}

type thumbnailResult struct {
	index int
	err   error
}

// BulkExport refreshes the user's favorites, writes the listing in the
// requested formats, and optionally downloads thumbnails concurrently.
//
// Thumbnail downloads run on a bounded worker pool behind a [rate.Limiter];
// partial failures are collected rather than aborting the export.
func (e *FavoritesEngine) BulkExport(ctx context.Context, userID, owner string, prog chan<- ProgressUpdate, opts BulkExportOpts) (*BulkExportResult, error) {
	if len(opts.Formats) == 0 {
		opts.Formats = []string{"json", "csv", "markdown", "txt"}
	}
	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("movu_export_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 5
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	favorites, err := e.Refresh(ctx, userID, prog)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &BulkExportResult{
		OutputDirectory: opts.OutputDir,
		TotalFavorites:  len(favorites),
	}

	for i, format := range opts.Formats {
		e.sendProgress(prog, exportingUpdate(i+1, len(opts.Formats), format))

		data, name, err := renderExport(format, owner, favorites)
		if err != nil {
			return nil, err
		}

		path := filepath.Join(opts.OutputDir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s export: %w", format, err)
		}
		result.Files = append(result.Files, path)
	}

	if !opts.Thumbnails || len(favorites) == 0 {
		return result, nil
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan thumbnailJob, len(favorites))
	results := make(chan thumbnailResult, len(favorites))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				err := limiter.Wait(ctx)
				if err == nil {
					err = downloadThumbnail(ctx, opts.HTTPClient, opts.OutputDir, job.favorite)
				}
				e.sendProgress(prog, thumbnailUpdate(job.index+1, len(favorites), job.favorite.Video.Title, err))
				results <- thumbnailResult{index: job.index, err: err}
			}
		}()
	}

	for i, fav := range favorites {
		jobs <- thumbnailJob{index: i, favorite: fav}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	for res := range results {
		if res.err != nil {
			result.ThumbnailErrors = append(result.ThumbnailErrors, res.err)
		} else {
			result.Thumbnails++
		}
	}

	return result, nil
}

// renderExport produces the listing bytes and filename for one format.
func renderExport(format, owner string, favorites []models.Favorite) ([]byte, string, error) {
	switch format {
	case "json":
		data, err := shared.MarshalJSON(favorites, true)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal favorites: %w", err)
		}
		return data, "favorites.json", nil
	case "csv":
		data, err := formatter.ExportToCSV(favorites)
		if err != nil {
			return nil, "", err
		}
		return data, "favorites.csv", nil
	case "markdown", "md":
		data, err := formatter.ExportToMarkdown(owner, favorites)
		if err != nil {
			return nil, "", err
		}
		return data, "favorites.md", nil
	case "txt", "text":
		return formatter.ExportToText(owner, favorites), "favorites.txt", nil
	default:
		return nil, "", fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidFlag, format)
	}
}

// downloadThumbnail fetches a favorite's thumbnail into the output directory.
func downloadThumbnail(ctx context.Context, client *http.Client, dir string, fav models.Favorite) error {
	if fav.Video.Image == "" {
		return fmt.Errorf("no thumbnail for video %s", fav.VideoID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fav.Video.Image, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch thumbnail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("thumbnail fetch failed: status %d", resp.StatusCode)
	}

	path := filepath.Join(dir, fmt.Sprintf("thumb_%s.jpg", fav.VideoID))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create thumbnail file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("failed to write thumbnail: %w", err)
	}

	return nil
}
