package main

import (
	"context"
	"fmt"

	"github.com/movu-app/movu/internal/models"
	"github.com/movu-app/movu/internal/shared"
	"github.com/movu-app/movu/internal/tasks"
	"github.com/urfave/cli/v3"
)

// FavoritesList lists the user's favorites, refreshing the local cache from
// the server unless --cached is set.
func (r *Runner) FavoritesList(ctx context.Context, cmd *cli.Command) error {
	cached := cmd.Bool("cached")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	session, err := r.requireSession()
	if err != nil {
		return err
	}

	if cached {
		favs, err := r.engine.Cached(session.UserID)
		if err != nil {
			return fmt.Errorf("failed to read cache: %w", err)
		}
		return r.printFavorites(favs, useJSON, pretty)
	}

	r.logger.Info("refreshing favorites", "user", session.UserID)

	favs, err := r.engine.Refresh(ctx, session.UserID, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	return r.printFavorites(favs, useJSON, pretty)
}

// FavoritesAdd searches the catalog and favorites the chosen result.
func (r *Runner) FavoritesAdd(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	index := int(cmd.Int("index"))

	if query == "" {
		return fmt.Errorf("%w: a search query is required", shared.ErrMissingArgument)
	}
	if index < 1 {
		return fmt.Errorf("%w: --index must be 1 or greater", shared.ErrInvalidFlag)
	}

	session, err := r.requireSession()
	if err != nil {
		return err
	}

	videos, err := r.movu.SearchVideos(ctx, query, 0)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	if index > len(videos) {
		return fmt.Errorf("%w: only %d results for %q", shared.ErrInvalidFlag, len(videos), query)
	}

	video := videos[index-1]
	r.logger.Info("adding favorite", "video", video.ID)

	progressCh := make(chan tasks.ProgressUpdate, 10)
	go r.printProgress(progressCh)

	favorite, err := r.engine.Add(ctx, session.UserID, video, progressCh)
	close(progressCh)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlainln("✓ Favorited: %s (%s)", favorite.Video.Title, favorite.VideoID)
	return nil
}

// FavoritesRemove removes a favorite by video ID.
func (r *Runner) FavoritesRemove(ctx context.Context, cmd *cli.Command) error {
	videoID := cmd.StringArg("video-id")
	if videoID == "" {
		return fmt.Errorf("%w: a video ID is required", shared.ErrMissingArgument)
	}

	session, err := r.requireSession()
	if err != nil {
		return err
	}

	r.logger.Info("removing favorite", "video", videoID)

	progressCh := make(chan tasks.ProgressUpdate, 10)
	go r.printProgress(progressCh)

	err = r.engine.Remove(ctx, session.UserID, videoID, progressCh)
	close(progressCh)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlainln("✓ Removed favorite %s", videoID)
	return nil
}

// FavoritesCheck reports whether a video is favorited.
func (r *Runner) FavoritesCheck(ctx context.Context, cmd *cli.Command) error {
	videoID := cmd.StringArg("video-id")
	if videoID == "" {
		return fmt.Errorf("%w: a video ID is required", shared.ErrMissingArgument)
	}

	session, err := r.requireSession()
	if err != nil {
		return err
	}

	favorite, err := r.movu.CheckFavorite(ctx, session.UserID, videoID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if favorite {
		r.writePlain("★ %s is a favorite\n", videoID)
	} else {
		r.writePlain("☆ %s is not a favorite\n", videoID)
	}
	return nil
}

// FavoritesSync refreshes the local cache from the server.
func (r *Runner) FavoritesSync(ctx context.Context, cmd *cli.Command) error {
	session, err := r.requireSession()
	if err != nil {
		return err
	}

	r.logger.Info("syncing favorites cache", "user", session.UserID)

	progressCh := make(chan tasks.ProgressUpdate, 10)
	go r.printProgress(progressCh)

	favorites, err := r.engine.Refresh(ctx, session.UserID, progressCh)
	close(progressCh)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlainln("✓ Cache in sync: %d favorites", len(favorites))
	return nil
}

// FavoritesExport writes the user's favorites to files, optionally with thumbnails.
func (r *Runner) FavoritesExport(ctx context.Context, cmd *cli.Command) error {
	session, err := r.requireSession()
	if err != nil {
		return err
	}

	owner := session.UserID
	if user, err := r.movu.User(ctx, session.UserID); err == nil && user != nil {
		owner = user.FullName()
	}

	opts := tasks.BulkExportOpts{
		Formats:    cmd.StringSlice("format"),
		OutputDir:  cmd.String("output"),
		NumWorkers: int(cmd.Int("workers")),
		Thumbnails: cmd.Bool("thumbnails"),
		HTTPClient: r.httpClient,
	}

	r.logger.Info("exporting favorites", "user", session.UserID, "thumbnails", opts.Thumbnails)
	r.writePlain("Exporting favorites...\n\n")

	progressCh := make(chan tasks.ProgressUpdate, 50)
	go r.printProgress(progressCh)

	result, err := r.engine.BulkExport(ctx, session.UserID, owner, progressCh, opts)
	close(progressCh)
	if err != nil {
		return err
	}

	r.writePlain("\n")
	r.writePlainHeader("Export Complete!")
	r.writePlain("Favorites: %d\n", result.TotalFavorites)
	r.writePlain("Directory: %s\n", result.OutputDirectory)
	for _, file := range result.Files {
		r.writePlain("  - %s\n", file)
	}
	if opts.Thumbnails {
		r.writePlain("Thumbnails: %d downloaded\n", result.Thumbnails)
		if len(result.ThumbnailErrors) > 0 {
			r.writePlain("\n%d thumbnails failed:\n", len(result.ThumbnailErrors))
			for _, thumbErr := range result.ThumbnailErrors {
				r.writePlain("  - %v\n", thumbErr)
			}
		}
	}

	return nil
}

func (r *Runner) printFavorites(favorites []models.Favorite, useJSON, pretty bool) error {
	if useJSON {
		return r.writeJSON(favorites, pretty)
	}

	r.writePlain("You have %d favorites:\n\n", len(favorites))
	for i, favorite := range favorites {
		r.printVideo(i+1, favorite.Video)
	}
	return nil
}

// printProgress renders engine progress updates until the channel closes.
func (r *Runner) printProgress(progressCh <-chan tasks.ProgressUpdate) {
	for update := range progressCh {
		switch update.Phase {
		case tasks.FetchFavorites:
			r.writePlain("📥 %s\n", update.Message)
		case tasks.RefreshCache:
			r.writePlain("💾 %s\n", update.Message)
		case tasks.CheckMembership:
			r.writePlain("🔍 %s\n", update.Message)
		case tasks.Mutate:
			r.writePlain("✏️  %s\n", update.Message)
		case tasks.ExportFavorites:
			r.writePlain("📝 %s\n", update.Message)
		case tasks.DownloadThumbnails:
			r.writePlain("🖼  %s\n", update.Message)
		}
	}
}
