// package formatter provides functions to export a favorites list to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/movu-app/movu/internal/models"
	"github.com/movu-app/movu/internal/shared"
)

// ExportToCSV converts a favorites list to CSV format with columns: VideoID, Title, Author, Duration, Thumbnail, Link
func ExportToCSV(favorites []models.Favorite) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"VideoID", "Title", "Author", "Duration", "Thumbnail", "Link"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, fav := range favorites {
		link := ""
		if file, ok := fav.Video.BestFile(); ok {
			link = file.Link
		}
		record := []string{
			fav.VideoID,
			fav.Video.Title,
			fav.Video.Author,
			strconv.Itoa(fav.Video.Duration),
			fav.Video.Image,
			link,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a favorites list to Markdown format
func ExportToMarkdown(owner string, favorites []models.Favorite) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# Favorites - %s\n\n", owner))
	buf.WriteString(fmt.Sprintf("**Videos**: %d\n\n", len(favorites)))

	buf.WriteString("## Videos\n\n")
	for i, fav := range favorites {
		duration := shared.FormatDuration(fav.Video.Duration)
		authorPart := ""
		if fav.Video.Author != "" {
			authorPart = fmt.Sprintf(" by %s", fav.Video.Author)
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s [%s]\n", i+1, fav.Video.Title, authorPart, duration))
		if fav.Video.Image != "" {
			buf.WriteString(fmt.Sprintf("   ![Thumbnail](%s)\n", fav.Video.Image))
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts a favorites list to plain text format
func ExportToText(owner string, favorites []models.Favorite) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Favorites - %s\n", owner))
	buf.WriteString(fmt.Sprintf("Videos: %d\n\n", len(favorites)))

	for i, fav := range favorites {
		buf.WriteString(fmt.Sprintf("%d. %s", i+1, fav.Video.Title))
		if fav.Video.Author != "" {
			buf.WriteString(fmt.Sprintf(" - %s", fav.Video.Author))
		}
		buf.WriteString(fmt.Sprintf(" [%s]\n", shared.FormatDuration(fav.Video.Duration)))
		if file, ok := fav.Video.BestFile(); ok {
			buf.WriteString(fmt.Sprintf("   %s\n", file.Link))
		}
	}

	return buf.Bytes()
}
