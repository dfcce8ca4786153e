package models

import "testing"

func TestUserFullName(t *testing.T) {
	user := User{FirstName: "Ada", LastName: "Lovelace"}
	if got := user.FullName(); got != "Ada Lovelace" {
		t.Errorf("FullName() = %v, want Ada Lovelace", got)
	}
}

func TestVideoBestFile(t *testing.T) {
	tc := []struct {
		name     string
		files    []VideoFile
		wantLink string
		wantOK   bool
	}{
		{
			name: "prefers hd",
			files: []VideoFile{
				{Link: "https://cdn.example.com/sd.mp4", Quality: "sd"},
				{Link: "https://cdn.example.com/hd.mp4", Quality: "hd"},
			},
			wantLink: "https://cdn.example.com/hd.mp4",
			wantOK:   true,
		},
		{
			name: "falls back to the first file",
			files: []VideoFile{
				{Link: "https://cdn.example.com/sd.mp4", Quality: "sd"},
				{Link: "https://cdn.example.com/uhd.mp4", Quality: "uhd"},
			},
			wantLink: "https://cdn.example.com/sd.mp4",
			wantOK:   true,
		},
		{
			name:   "no files",
			files:  nil,
			wantOK: false,
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			video := Video{ID: "100", Files: tt.files}
			file, ok := video.BestFile()
			if ok != tt.wantOK {
				t.Fatalf("BestFile() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && file.Link != tt.wantLink {
				t.Errorf("BestFile() link = %v, want %v", file.Link, tt.wantLink)
			}
		})
	}
}

func TestCachedFavorite(t *testing.T) {
	video := Video{ID: "100", Title: "Waves", Duration: 30}

	t.Run("Validate", func(t *testing.T) {
		row := NewCachedFavorite(1, "user-7", "100", video)
		if err := row.Validate(); err != nil {
			t.Errorf("expected a valid row, got %v", err)
		}

		missingUser := NewCachedFavorite(1, "", "100", video)
		if err := missingUser.Validate(); err == nil {
			t.Error("expected an error for a missing user id")
		}

		missingVideo := NewCachedFavorite(1, "user-7", "", video)
		if err := missingVideo.Validate(); err == nil {
			t.Error("expected an error for a missing video id")
		}
	})

	t.Run("AsFavorite", func(t *testing.T) {
		row := NewCachedFavorite(1, "user-7", "100", video)
		favorite := row.AsFavorite()

		if favorite.UserID != "user-7" || favorite.VideoID != "100" {
			t.Errorf("unexpected identity pair: %+v", favorite)
		}
		if favorite.Video.Title != "Waves" {
			t.Errorf("expected the video snapshot to carry over, got %+v", favorite.Video)
		}
	})

	t.Run("timestamps set on creation", func(t *testing.T) {
		row := NewCachedFavorite(1, "user-7", "100", video)
		if row.CreatedAt().IsZero() || row.UpdatedAt().IsZero() {
			t.Error("expected creation timestamps to be set")
		}
		if row.DeletedAt() != nil {
			t.Error("expected a live row")
		}
	})
}
