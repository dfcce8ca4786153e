package formatter

import (
	"strings"
	"testing"

	"github.com/movu-app/movu/internal/models"
)

func sampleFavorites() []models.Favorite {
	return []models.Favorite{
		{
			VideoID: "100",
			Video: models.Video{
				ID:       "100",
				Title:    "Aerial View Of A Beach",
				Author:   "Jess",
				Duration: 42,
				Image:    "https://images.pexels.com/100.jpg",
				Files: []models.VideoFile{
					{Link: "https://cdn/sd.mp4", Quality: "sd"},
					{Link: "https://cdn/hd.mp4", Quality: "hd"},
				},
			},
		},
		{
			VideoID: "200",
			Video: models.Video{
				ID:       "200",
				Title:    "City Lights",
				Duration: 125,
			},
		},
	}
}

func TestExportToCSV(t *testing.T) {
	data, err := ExportToCSV(sampleFavorites())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 records, got %d lines", len(lines))
	}
	if lines[0] != "VideoID,Title,Author,Duration,Thumbnail,Link" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "https://cdn/hd.mp4") {
		t.Errorf("expected the HD link in the record, got %s", lines[1])
	}
	if !strings.Contains(lines[2], "City Lights") {
		t.Errorf("expected the second record, got %s", lines[2])
	}

	t.Run("empty list yields only the header", func(t *testing.T) {
		data, err := ExportToCSV(nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 1 {
			t.Errorf("expected only the header, got %d lines", len(lines))
		}
	})
}

func TestExportToMarkdown(t *testing.T) {
	data, err := ExportToMarkdown("Ada Lovelace", sampleFavorites())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	text := string(data)

	if !strings.Contains(text, "# Favorites - Ada Lovelace") {
		t.Error("expected the owner in the title")
	}
	if !strings.Contains(text, "**Videos**: 2") {
		t.Error("expected the video count")
	}
	if !strings.Contains(text, "1. Aerial View Of A Beach by Jess [0:42]") {
		t.Errorf("expected the first entry with author and duration, got:\n%s", text)
	}
	if !strings.Contains(text, "2. City Lights [2:05]") {
		t.Errorf("expected the second entry without an author, got:\n%s", text)
	}
	if !strings.Contains(text, "![Thumbnail](https://images.pexels.com/100.jpg)") {
		t.Error("expected the thumbnail image link")
	}
}

func TestExportToText(t *testing.T) {
	text := string(ExportToText("Ada Lovelace", sampleFavorites()))

	if !strings.Contains(text, "Favorites - Ada Lovelace") {
		t.Error("expected the owner in the heading")
	}
	if !strings.Contains(text, "1. Aerial View Of A Beach - Jess [0:42]") {
		t.Errorf("expected the first entry, got:\n%s", text)
	}
	if !strings.Contains(text, "https://cdn/hd.mp4") {
		t.Error("expected the playback link")
	}
	if !strings.Contains(text, "2. City Lights [2:05]") {
		t.Errorf("expected the second entry, got:\n%s", text)
	}
}
