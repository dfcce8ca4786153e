package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/movu-app/movu/internal/models"
	"github.com/movu-app/movu/internal/shared"
)

var (
	_ list.Item = videoItem{}
	_ list.Item = favoriteItem{}
	_ list.Item = commentItem{}
)

// videoItem wraps [models.Video] to implement [list.Item].
type videoItem struct {
	video models.Video
}

func (i videoItem) FilterValue() string { return i.video.Title }
func (i videoItem) Title() string       { return i.video.Title }
func (i videoItem) Description() string {
	desc := shared.FormatDuration(i.video.Duration)
	if i.video.Author != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.video.Author)
	}
	return desc
}

// favoriteItem wraps [models.Favorite] to implement [list.Item].
type favoriteItem struct {
	favorite models.Favorite
}

func (i favoriteItem) FilterValue() string { return i.favorite.Video.Title }
func (i favoriteItem) Title() string       { return i.favorite.Video.Title }
func (i favoriteItem) Description() string {
	desc := shared.FormatDuration(i.favorite.Video.Duration)
	if i.favorite.Video.Author != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.favorite.Video.Author)
	}
	return desc
}

// commentItem wraps [models.Comment] to implement [list.Item].
type commentItem struct {
	comment models.Comment
}

func (i commentItem) FilterValue() string { return i.comment.Text }
func (i commentItem) Title() string       { return i.comment.User }
func (i commentItem) Description() string { return i.comment.Text }
