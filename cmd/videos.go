package main

import (
	"context"
	"fmt"

	"github.com/movu-app/movu/internal/models"
	"github.com/movu-app/movu/internal/shared"
	"github.com/urfave/cli/v3"
)

// VideosSearch searches the catalog and prints the results.
func (r *Runner) VideosSearch(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	perPage := cmd.Int("per-page")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if query == "" {
		return fmt.Errorf("%w: a search query is required", shared.ErrMissingArgument)
	}

	r.logger.Infof("searching catalog for %q", query)

	videos, err := r.movu.SearchVideos(ctx, query, int(perPage))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if useJSON {
		return r.writeJSON(videos, pretty)
	}

	r.writePlain("Found %d videos for %q:\n\n", len(videos), query)
	for i, video := range videos {
		r.printVideo(i+1, video)
	}

	return nil
}

// VideosOpen searches the catalog and opens the chosen result in the browser.
func (r *Runner) VideosOpen(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	index := int(cmd.Int("index"))

	if query == "" {
		return fmt.Errorf("%w: a search query is required", shared.ErrMissingArgument)
	}
	if index < 1 {
		return fmt.Errorf("%w: --index must be 1 or greater", shared.ErrInvalidFlag)
	}

	videos, err := r.movu.SearchVideos(ctx, query, 0)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if index > len(videos) {
		return fmt.Errorf("%w: only %d results for %q", shared.ErrInvalidFlag, len(videos), query)
	}

	video := videos[index-1]
	file, ok := video.BestFile()
	if !ok {
		return fmt.Errorf("%w: %q has no playable files", shared.ErrVideoNotFound, video.Title)
	}

	r.logger.Infof("opening %v", video.Title)
	r.writePlain("→ Opening %s (%s)...\n", video.Title, shared.FormatDuration(video.Duration))

	if err := shared.OpenBrowser(file.Link); err != nil {
		r.logger.Warnf("failed to open browser automatically %v", err)
		r.writePlainln("⚠ Could not open browser automatically.")
		r.writePlain("Open this URL:\n%s\n", file.Link)
	}

	return nil
}

func (r *Runner) printVideo(num int, video models.Video) {
	r.writePlain("%d. %s\n", num, video.Title)
	r.writePlain("   ID: %s\n", video.ID)
	r.writePlain("   Duration: %s\n", shared.FormatDuration(video.Duration))
	if video.Author != "" {
		r.writePlain("   Author: %s\n", video.Author)
	}
	if file, ok := video.BestFile(); ok {
		r.writePlain("   Link: %s\n", file.Link)
	}
	r.writePlain("\n")
}
