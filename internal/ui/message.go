package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/movu-app/movu/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgSessionLoaded MsgKind = iota
	MsgLoginDone
	MsgRegisterDone
	MsgVideosFetched
	MsgFavoritesFetched
	MsgFavoriteToggled
	MsgCommentsFetched
	MsgCommentPosted
	MsgCommentDeleted
	MsgProfileFetched
	MsgProfileSaved
	MsgAccountDeleted
	MsgPlayerTick
)

type sessionPayload struct {
	session *models.Session
	err     error
}

type userPayload struct {
	user *models.User
	err  error
}

type videosPayload struct {
	videos []models.Video
	err    error
}

type favoritesPayload struct {
	favorites []models.Favorite
	err       error
}

type togglePayload struct {
	videoID  string
	favorite bool
	err      error
}

type commentsPayload struct {
	comments []models.Comment
	err      error
}

type deletedPayload struct {
	ok bool
}

// sessionLoadedMsg is the constructor for [MsgSessionLoaded]
func sessionLoadedMsg(session *models.Session, err error) Msg {
	return Msg{kind: MsgSessionLoaded, data: sessionPayload{session, err}}
}

// loginDoneMsg is the constructor for [MsgLoginDone]
func loginDoneMsg(session *models.Session, err error) Msg {
	return Msg{kind: MsgLoginDone, data: sessionPayload{session, err}}
}

// registerDoneMsg is the constructor for [MsgRegisterDone]
func registerDoneMsg(user *models.User, err error) Msg {
	return Msg{kind: MsgRegisterDone, data: userPayload{user, err}}
}

// videosFetchedMsg is the constructor for [MsgVideosFetched]
func videosFetchedMsg(videos []models.Video, err error) Msg {
	return Msg{kind: MsgVideosFetched, data: videosPayload{videos, err}}
}

// favoritesFetchedMsg is the constructor for [MsgFavoritesFetched]
func favoritesFetchedMsg(favorites []models.Favorite, err error) Msg {
	return Msg{kind: MsgFavoritesFetched, data: favoritesPayload{favorites, err}}
}

// favoriteToggledMsg is the constructor for [MsgFavoriteToggled]
func favoriteToggledMsg(videoID string, favorite bool, err error) Msg {
	return Msg{kind: MsgFavoriteToggled, data: togglePayload{videoID, favorite, err}}
}

// commentsFetchedMsg is the constructor for [MsgCommentsFetched]
func commentsFetchedMsg(comments []models.Comment, err error) Msg {
	return Msg{kind: MsgCommentsFetched, data: commentsPayload{comments, err}}
}

// commentPostedMsg is the constructor for [MsgCommentPosted]
func commentPostedMsg(comments []models.Comment, err error) Msg {
	return Msg{kind: MsgCommentPosted, data: commentsPayload{comments, err}}
}

// commentDeletedMsg is the constructor for [MsgCommentDeleted]
func commentDeletedMsg(comments []models.Comment, err error) Msg {
	return Msg{kind: MsgCommentDeleted, data: commentsPayload{comments, err}}
}

// profileFetchedMsg is the constructor for [MsgProfileFetched]
func profileFetchedMsg(user *models.User, err error) Msg {
	return Msg{kind: MsgProfileFetched, data: userPayload{user, err}}
}

// profileSavedMsg is the constructor for [MsgProfileSaved]
func profileSavedMsg(user *models.User, err error) Msg {
	return Msg{kind: MsgProfileSaved, data: userPayload{user, err}}
}

// accountDeletedMsg is the constructor for [MsgAccountDeleted]
func accountDeletedMsg(ok bool) Msg {
	return Msg{kind: MsgAccountDeleted, data: deletedPayload{ok}}
}

// playerTickMsg is the constructor for [MsgPlayerTick]
func playerTickMsg() Msg {
	return Msg{kind: MsgPlayerTick}
}
