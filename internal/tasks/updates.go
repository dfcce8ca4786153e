package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	FetchFavorites Phase = iota
	RefreshCache
	CheckMembership
	Mutate
	ExportFavorites
	DownloadThumbnails
)

func (p Phase) String() string {
	switch p {
	case FetchFavorites:
		return "fetch_favorites"
	case RefreshCache:
		return "refresh_cache"
	case CheckMembership:
		return "check_membership"
	case Mutate:
		return "mutate"
	case ExportFavorites:
		return "export_favorites"
	case DownloadThumbnails:
		return "download_thumbnails"
	default:
		return ""
	}
}

func fetchFavoritesUpdate(step, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchFavorites,
		Step:    step,
		Total:   total,
		Message: "Fetching favorites from Movu...",
	}
}

func fetchedFavoritesUpdate(step, total, count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchFavorites,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Found %d favorites", count),
	}
}

func refreshCacheUpdate(step, total, count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   RefreshCache,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Caching %d favorites locally...", count),
	}
}

func checkMembershipUpdate(step, total int, videoID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CheckMembership,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Checking favorite state for %s...", videoID),
	}
}

func mutateUpdate(step, total int, action, title string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Mutate,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("%s: %s", action, title),
	}
}

func exportingUpdate(step, total int, format string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportFavorites,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Writing %s export...", step, total, format),
	}
}

func thumbnailUpdate(step, total int, title string, err error) ProgressUpdate {
	msg := fmt.Sprintf("[%d/%d] ✓ %s", step, total, title)
	if err != nil {
		msg = fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, title, err)
	}
	return ProgressUpdate{
		Phase:   DownloadThumbnails,
		Step:    step,
		Total:   total,
		Message: msg,
	}
}
