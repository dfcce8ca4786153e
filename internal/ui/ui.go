package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/movu-app/movu/internal/models"
	"github.com/movu-app/movu/internal/player"
	"github.com/movu-app/movu/internal/repositories"
	"github.com/movu-app/movu/internal/services"
	"github.com/movu-app/movu/internal/shared"
	"github.com/movu-app/movu/internal/tasks"
	"github.com/movu-app/movu/internal/validation"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LoginView ViewState = iota
	RegisterView
	DashboardView
	FavoritesView
	VideoView
	ProfileView
	EditProfileView
)

const (
	defaultQuery     = "popular"
	progressBarWidth = 30
	seekStep         = 3
)

// Model represents the TUI application state.
type Model struct {
	ctx      context.Context
	view     ViewState
	api      services.Service
	engine   *tasks.FavoritesEngine
	sessions *repositories.SessionRepository

	width  int
	height int

	session *models.Session

	loginForm    form
	registerForm form
	profileForm  form
	formErrs     map[validation.Field]string

	searchInput   textinput.Model
	searchFocused bool
	videoList     list.Model
	videos        []models.Video

	favoriteList list.Model
	favorites    []models.Favorite

	current        *models.Video
	isFavorite     bool
	player         *player.Player
	commentList    list.Model
	comments       []models.Comment
	commentInput   textinput.Model
	commentFocused bool
	confirmComment bool
	confirmAccount bool
	returnView     ViewState

	status string
	err    error
	help   help.Model
	keys   keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, api services.Service, engine *tasks.FavoritesEngine, sessions *repositories.SessionRepository) *Model {
	search := textinput.New()
	search.Placeholder = "search videos"
	search.CharLimit = 64

	comment := textinput.New()
	comment.Placeholder = "leave a comment"
	comment.CharLimit = 280

	videoList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	videoList.Title = "Movu Catalog"
	favoriteList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	favoriteList.Title = "Your Favorites"
	commentList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	commentList.Title = "Comments"

	return &Model{
		ctx:          ctx,
		view:         LoginView,
		api:          api,
		engine:       engine,
		sessions:     sessions,
		loginForm:    newForm(validation.FieldEmail, validation.FieldPassword),
		registerForm: newForm(validation.FieldFirstName, validation.FieldLastName, validation.FieldAge, validation.FieldEmail, validation.FieldPassword, validation.FieldConfirmPassword),
		searchInput:  search,
		commentInput: comment,
		videoList:    videoList,
		favoriteList: favoriteList,
		commentList:  commentList,
		help:         help.New(),
		keys:         newKeyMap(),
	}
}

// Init restores the stored session, if any.
func (m *Model) Init() tea.Cmd {
	return m.loadSession()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.videoList.Width() == 0 {
			m.videoList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.favoriteList.Width() == 0 {
			m.favoriteList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case LoginView:
			return m.handleLoginKeys(msg)
		case RegisterView:
			return m.handleRegisterKeys(msg)
		case DashboardView:
			return m.handleDashboardKeys(msg)
		case FavoritesView:
			return m.handleFavoritesKeys(msg)
		case VideoView:
			return m.handleVideoKeys(msg)
		case ProfileView:
			return m.handleProfileKeys(msg)
		case EditProfileView:
			return m.handleEditProfileKeys(msg)
		}

	case Msg:
		return m.handleMsg(msg)
	}

	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress ctrl+c to quit", m.err))
	}

	switch m.view {
	case LoginView:
		return m.renderLogin()
	case RegisterView:
		return m.renderRegister()
	case DashboardView:
		return m.renderDashboard()
	case FavoritesView:
		return m.renderFavorites()
	case VideoView:
		return m.renderVideo()
	case ProfileView:
		return m.renderProfile()
	case EditProfileView:
		return m.renderEditProfile()
	default:
		return ""
	}
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgSessionLoaded:
		payload := msg.data.(sessionPayload)
		if payload.err != nil {
			m.err = payload.err
			return m, nil
		}
		if payload.session == nil {
			return m, nil
		}
		m.session = payload.session
		m.view = DashboardView
		return m, tea.Batch(m.fetchVideos(defaultQuery), m.fetchCachedFavorites(), m.fetchProfile())

	case MsgLoginDone:
		payload := msg.data.(sessionPayload)
		if payload.err != nil {
			m.status = styles.err.Render(payload.err.Error())
			return m, nil
		}
		m.session = payload.session
		m.status = ""
		m.view = DashboardView
		return m, tea.Batch(m.fetchVideos(defaultQuery), m.refreshFavorites(), m.fetchProfile())

	case MsgRegisterDone:
		payload := msg.data.(userPayload)
		if payload.err != nil {
			m.status = styles.err.Render(payload.err.Error())
			return m, nil
		}
		m.view = LoginView
		m.loginForm.Reset()
		m.loginForm.Set(validation.FieldEmail, payload.user.Email)
		m.status = styles.ok.Render("Account created, please sign in")
		return m, nil

	case MsgVideosFetched:
		payload := msg.data.(videosPayload)
		if payload.err != nil {
			m.status = styles.err.Render(payload.err.Error())
			return m, nil
		}
		m.videos = payload.videos
		items := make([]list.Item, len(payload.videos))
		for i, video := range payload.videos {
			items[i] = videoItem{video: video}
		}
		m.videoList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.videoList.Title = "Movu Catalog"
		m.videoList.SetSize(m.width-4, m.height-8)
		return m, nil

	case MsgFavoritesFetched:
		payload := msg.data.(favoritesPayload)
		if payload.err != nil {
			m.status = styles.err.Render(payload.err.Error())
			return m, nil
		}
		m.favorites = payload.favorites
		items := make([]list.Item, len(payload.favorites))
		for i, favorite := range payload.favorites {
			items[i] = favoriteItem{favorite: favorite}
		}
		m.favoriteList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.favoriteList.Title = "Your Favorites"
		m.favoriteList.SetSize(m.width-4, m.height-8)
		return m, nil

	case MsgFavoriteToggled:
		payload := msg.data.(togglePayload)
		if payload.err != nil {
			m.status = styles.warn.Render(payload.err.Error())
			return m, nil
		}
		if m.current != nil && m.current.ID == payload.videoID {
			m.isFavorite = payload.favorite
		}
		return m, m.fetchCachedFavorites()

	case MsgCommentsFetched, MsgCommentPosted, MsgCommentDeleted:
		payload := msg.data.(commentsPayload)
		if payload.err != nil {
			m.status = styles.warn.Render(payload.err.Error())
			return m, nil
		}
		if msg.kind == MsgCommentPosted {
			m.commentInput.SetValue("")
		}
		m.comments = payload.comments
		items := make([]list.Item, len(payload.comments))
		for i, comment := range payload.comments {
			items[i] = commentItem{comment: comment}
		}
		m.commentList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.commentList.Title = "Comments"
		m.commentList.SetSize(m.width-4, 10)
		return m, nil

	case MsgProfileFetched:
		payload := msg.data.(userPayload)
		if payload.err != nil || payload.user == nil {
			return m, nil
		}
		if m.session != nil {
			m.session.User = payload.user
		}
		return m, nil

	case MsgProfileSaved:
		payload := msg.data.(userPayload)
		if payload.err != nil {
			m.status = styles.err.Render(payload.err.Error())
			return m, nil
		}
		if m.session != nil {
			m.session.User = payload.user
		}
		m.view = ProfileView
		m.status = styles.ok.Render("Profile updated")
		return m, nil

	case MsgAccountDeleted:
		payload := msg.data.(deletedPayload)
		m.confirmAccount = false
		if !payload.ok {
			m.status = styles.warn.Render("Could not delete account")
			return m, nil
		}
		m.session = nil
		m.view = LoginView
		m.loginForm.Reset()
		m.status = styles.ok.Render("Account deleted")
		return m, nil

	case MsgPlayerTick:
		if m.player != nil && m.player.Playing() && m.view == VideoView {
			m.player.Advance(1)
			if m.player.Playing() {
				return m, m.tick()
			}
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.loginForm.Next()
		return m, nil
	case "ctrl+r":
		m.status = ""
		m.formErrs = nil
		m.view = RegisterView
		return m, nil
	case "enter":
		return m, m.submitLogin()
	}
	return m, m.loginForm.Update(msg)
}

func (m *Model) handleRegisterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.status = ""
		m.formErrs = nil
		m.view = LoginView
		return m, nil
	case "tab":
		m.registerForm.Next()
		return m, nil
	case "enter":
		return m, m.submitRegister()
	}
	return m, m.registerForm.Update(msg)
}

func (m *Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchFocused {
		switch msg.String() {
		case "enter":
			query := strings.TrimSpace(m.searchInput.Value())
			m.searchFocused = false
			m.searchInput.Blur()
			if query == "" {
				return m, nil
			}
			return m, m.fetchVideos(query)
		case "esc":
			m.searchFocused = false
			m.searchInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.searchFocused = true
		m.searchInput.Focus()
		return m, nil
	case "f":
		m.view = FavoritesView
		return m, m.fetchCachedFavorites()
	case "p":
		m.view = ProfileView
		return m, m.fetchProfile()
	case "ctrl+l":
		m.session = nil
		m.view = LoginView
		m.loginForm.Reset()
		m.status = styles.help.Render("Logged out")
		return m, nil
	case "enter":
		selected := m.videoList.SelectedItem()
		if selected != nil {
			if item, ok := selected.(videoItem); ok {
				return m.openVideo(item.video)
			}
		}
	}

	var cmd tea.Cmd
	m.videoList, cmd = m.videoList.Update(msg)
	return m, cmd
}

func (m *Model) handleFavoritesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = DashboardView
		return m, nil
	case "enter":
		selected := m.favoriteList.SelectedItem()
		if selected != nil {
			if item, ok := selected.(favoriteItem); ok {
				return m.openVideo(item.favorite.Video)
			}
		}
	case "x":
		selected := m.favoriteList.SelectedItem()
		if selected != nil {
			if item, ok := selected.(favoriteItem); ok {
				return m, m.removeFavorite(item.favorite.VideoID)
			}
		}
	}

	var cmd tea.Cmd
	m.favoriteList, cmd = m.favoriteList.Update(msg)
	return m, cmd
}

func (m *Model) handleVideoKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.commentFocused {
		switch msg.String() {
		case "enter":
			text := strings.TrimSpace(m.commentInput.Value())
			m.commentFocused = false
			m.commentInput.Blur()
			if text == "" {
				return m, nil
			}
			return m, m.postComment(text)
		case "esc":
			m.commentFocused = false
			m.commentInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.commentInput, cmd = m.commentInput.Update(msg)
		return m, cmd
	}

	if m.confirmComment {
		switch msg.String() {
		case "y":
			m.confirmComment = false
			selected := m.commentList.SelectedItem()
			if selected != nil {
				if item, ok := selected.(commentItem); ok {
					return m, m.deleteComment(item.comment.ID)
				}
			}
		case "n", "esc":
			m.confirmComment = false
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.player = nil
		m.current = nil
		m.view = m.returnView
		return m, nil
	case " ":
		if m.player != nil && m.player.TogglePlay() {
			return m, m.tick()
		}
		return m, nil
	case "m":
		if m.player != nil {
			m.player.ToggleMute()
		}
		return m, nil
	case "f":
		if m.player != nil {
			m.player.ToggleFullscreen()
		}
		return m, nil
	case "left":
		m.seekBy(-seekStep)
		return m, nil
	case "right":
		m.seekBy(seekStep)
		return m, nil
	case "+":
		if m.player != nil {
			m.player.SetVolume(m.player.Volume() + 0.1)
		}
		return m, nil
	case "-":
		if m.player != nil {
			m.player.SetVolume(m.player.Volume() - 0.1)
		}
		return m, nil
	case "s":
		if m.current != nil {
			return m, m.toggleFavorite(*m.current)
		}
		return m, nil
	case "o":
		if m.current == nil {
			return m, nil
		}
		file, ok := m.current.BestFile()
		if !ok {
			m.status = styles.warn.Render("No playable file for this video")
			return m, nil
		}
		if err := shared.OpenBrowser(file.Link); err != nil {
			m.status = styles.warn.Render("Could not open browser, URL: " + file.Link)
		} else {
			m.status = styles.ok.Render("Opened in browser")
		}
		return m, nil
	case "c":
		m.commentFocused = true
		m.commentInput.Focus()
		return m, nil
	case "d":
		if m.commentList.SelectedItem() != nil {
			m.confirmComment = true
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.commentList, cmd = m.commentList.Update(msg)
	return m, cmd
}

func (m *Model) handleProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmAccount {
		switch msg.String() {
		case "y":
			return m, m.deleteAccount()
		case "n", "esc":
			m.confirmAccount = false
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = DashboardView
		return m, nil
	case "e":
		m.profileForm = newForm(validation.FieldFirstName, validation.FieldLastName, validation.FieldAge, validation.FieldEmail)
		if m.session != nil && m.session.User != nil {
			user := m.session.User
			m.profileForm.Set(validation.FieldFirstName, user.FirstName)
			m.profileForm.Set(validation.FieldLastName, user.LastName)
			m.profileForm.Set(validation.FieldAge, strconv.Itoa(user.Age))
			m.profileForm.Set(validation.FieldEmail, user.Email)
		}
		m.formErrs = nil
		m.view = EditProfileView
		return m, nil
	case "d":
		m.confirmAccount = true
		return m, nil
	}
	return m, nil
}

func (m *Model) handleEditProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.formErrs = nil
		m.view = ProfileView
		return m, nil
	case "tab":
		m.profileForm.Next()
		return m, nil
	case "enter":
		return m, m.submitProfile()
	}
	return m, m.profileForm.Update(msg)
}

func (m *Model) openVideo(video models.Video) (tea.Model, tea.Cmd) {
	m.current = &video
	m.player = player.New(video.Duration)
	m.isFavorite = false
	m.returnView = m.view
	m.view = VideoView
	return m, tea.Batch(m.fetchComments(), m.checkFavorite(video.ID))
}

func (m *Model) seekBy(steps int) {
	if m.player == nil {
		return
	}
	slot := int(m.player.Progress() / 100 * progressBarWidth)
	m.player.SeekTo(slot+steps, progressBarWidth)
}

func (m *Model) userID() string {
	if m.session == nil {
		return ""
	}
	return m.session.UserID
}

func (m *Model) loadSession() tea.Cmd {
	return func() tea.Msg {
		if m.sessions == nil {
			return sessionLoadedMsg(nil, nil)
		}
		session, err := m.sessions.Current()
		if err != nil {
			if errors.Is(err, shared.ErrNoSession) {
				return sessionLoadedMsg(nil, nil)
			}
			return sessionLoadedMsg(nil, err)
		}
		return sessionLoadedMsg(session, nil)
	}
}

func (m *Model) submitLogin() tea.Cmd {
	values := m.loginForm.Values()
	errs := map[validation.Field]string{}
	if msg := validation.ValidateField(validation.FieldEmail, values[validation.FieldEmail], values); msg != "" {
		errs[validation.FieldEmail] = msg
	}
	if values[validation.FieldPassword] == "" {
		errs[validation.FieldPassword] = "password is required"
	}
	if len(errs) > 0 {
		m.formErrs = errs
		return nil
	}
	m.formErrs = nil

	email := values[validation.FieldEmail]
	password := values[validation.FieldPassword]
	return func() tea.Msg {
		result, err := m.api.Login(m.ctx, email, password)
		if err != nil {
			return loginDoneMsg(nil, err)
		}
		if m.sessions != nil {
			if err := m.sessions.Set(result.UserID, nil); err != nil {
				return loginDoneMsg(nil, err)
			}
		}
		return loginDoneMsg(&models.Session{UserID: result.UserID, UpdatedAt: time.Now()}, nil)
	}
}

func (m *Model) submitRegister() tea.Cmd {
	values := m.registerForm.Values()
	if errs := validation.ValidateForm(values); len(errs) > 0 {
		m.formErrs = errs
		return nil
	}
	m.formErrs = nil

	age, _ := strconv.Atoi(values[validation.FieldAge])
	input := services.RegisterInput{
		FirstName: values[validation.FieldFirstName],
		LastName:  values[validation.FieldLastName],
		Age:       age,
		Email:     values[validation.FieldEmail],
		Password:  values[validation.FieldPassword],
	}
	return func() tea.Msg {
		user, err := m.api.Register(m.ctx, input)
		return registerDoneMsg(user, err)
	}
}

func (m *Model) submitProfile() tea.Cmd {
	values := m.profileForm.Values()
	errs := map[validation.Field]string{}
	for _, field := range m.profileForm.fields {
		if msg := validation.ValidateField(field, values[field], values); msg != "" {
			errs[field] = msg
		}
	}
	if len(errs) > 0 {
		m.formErrs = errs
		return nil
	}
	m.formErrs = nil

	age, _ := strconv.Atoi(values[validation.FieldAge])
	firstName := values[validation.FieldFirstName]
	lastName := values[validation.FieldLastName]
	email := values[validation.FieldEmail]
	patch := services.UserPatch{
		FirstName: &firstName,
		LastName:  &lastName,
		Age:       &age,
		Email:     &email,
	}
	userID := m.userID()
	return func() tea.Msg {
		user, err := m.api.UpdateUser(m.ctx, userID, patch)
		return profileSavedMsg(user, err)
	}
}

func (m *Model) fetchVideos(query string) tea.Cmd {
	return func() tea.Msg {
		videos, err := m.api.SearchVideos(m.ctx, query, 0)
		return videosFetchedMsg(videos, err)
	}
}

func (m *Model) fetchProfile() tea.Cmd {
	userID := m.userID()
	return func() tea.Msg {
		if userID == "" {
			return profileFetchedMsg(nil, nil)
		}
		user, err := m.api.User(m.ctx, userID)
		return profileFetchedMsg(user, err)
	}
}

func (m *Model) refreshFavorites() tea.Cmd {
	userID := m.userID()
	return func() tea.Msg {
		favorites, err := m.engine.Refresh(m.ctx, userID, nil)
		return favoritesFetchedMsg(favorites, err)
	}
}

func (m *Model) fetchCachedFavorites() tea.Cmd {
	userID := m.userID()
	return func() tea.Msg {
		favorites, err := m.engine.Cached(userID)
		return favoritesFetchedMsg(favorites, err)
	}
}

func (m *Model) checkFavorite(videoID string) tea.Cmd {
	userID := m.userID()
	return func() tea.Msg {
		favorite, err := m.api.CheckFavorite(m.ctx, userID, videoID)
		return favoriteToggledMsg(videoID, favorite, err)
	}
}

func (m *Model) toggleFavorite(video models.Video) tea.Cmd {
	userID := m.userID()
	return func() tea.Msg {
		favorite, err := m.engine.Toggle(m.ctx, userID, video, nil)
		return favoriteToggledMsg(video.ID, favorite, err)
	}
}

func (m *Model) removeFavorite(videoID string) tea.Cmd {
	userID := m.userID()
	return func() tea.Msg {
		if err := m.engine.Remove(m.ctx, userID, videoID, nil); err != nil {
			return favoriteToggledMsg(videoID, true, err)
		}
		return favoriteToggledMsg(videoID, false, nil)
	}
}

func (m *Model) fetchComments() tea.Cmd {
	return func() tea.Msg {
		comments, err := m.api.Comments(m.ctx)
		return commentsFetchedMsg(comments, err)
	}
}

func (m *Model) postComment(text string) tea.Cmd {
	author := "anonymous"
	if m.session != nil && m.session.User != nil {
		author = m.session.User.FullName()
	}
	return func() tea.Msg {
		if _, err := m.api.AddComment(m.ctx, author, text); err != nil {
			return commentPostedMsg(nil, err)
		}
		comments, err := m.api.Comments(m.ctx)
		return commentPostedMsg(comments, err)
	}
}

func (m *Model) deleteComment(commentID string) tea.Cmd {
	return func() tea.Msg {
		if err := m.api.DeleteComment(m.ctx, commentID); err != nil {
			return commentDeletedMsg(nil, err)
		}
		comments, err := m.api.Comments(m.ctx)
		return commentDeletedMsg(comments, err)
	}
}

func (m *Model) deleteAccount() tea.Cmd {
	userID := m.userID()
	return func() tea.Msg {
		ok := m.api.DeleteUser(m.ctx, userID)
		if ok && m.sessions != nil {
			_ = m.sessions.Clear()
		}
		return accountDeletedMsg(ok)
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return playerTickMsg()
	})
}

func (m *Model) header() string {
	name := "guest"
	if m.session != nil {
		name = m.session.UserID
		if m.session.User != nil {
			name = m.session.User.FullName()
		}
	}
	return styles.title.Render("Movu") + styles.help.Render(fmt.Sprintf("  signed in as %s", name))
}

func (m *Model) renderLogin() string {
	title := styles.title.Render("Movu · Sign In")
	hint := styles.help.Render("tab: next field · enter: sign in · ctrl+r: create account · ctrl+c: quit")
	return fmt.Sprintf("%s\n\n%s\n%s\n%s", title, m.loginForm.View(m.formErrs), m.status, hint)
}

func (m *Model) renderRegister() string {
	title := styles.title.Render("Movu · Create Account")
	hint := styles.help.Render("tab: next field · enter: register · esc: back · ctrl+c: quit")
	return fmt.Sprintf("%s\n\n%s\n%s\n%s", title, m.registerForm.View(m.formErrs), m.status, hint)
}

func (m *Model) renderDashboard() string {
	var search string
	if m.searchFocused {
		search = m.searchInput.View()
	} else {
		search = styles.help.Render("press / to search")
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.favs, m.keys.profile, m.keys.logout, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n\n%s\n%s\n\n%s", m.header(), search, m.videoList.View(), m.status, helpView)
}

func (m *Model) renderFavorites() string {
	removeKey := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove"))
	helpKeys := []key.Binding{m.keys.enter, removeKey, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s\n%s\n\n%s", m.header(), m.favoriteList.View(), m.status, helpView)
}

func (m *Model) renderVideo() string {
	if m.current == nil {
		return ""
	}

	title := styles.title.Render(m.current.Title)
	meta := styles.help.Render(fmt.Sprintf("%s · %s", m.current.Author, shared.FormatDuration(m.current.Duration)))

	star := "☆"
	if m.isFavorite {
		star = styles.ok.Render("★")
	}

	var bar string
	if m.player != nil {
		filled := int(m.player.Progress() / 100 * progressBarWidth)
		if filled > progressBarWidth {
			filled = progressBarWidth
		}
		bar = "[" + strings.Repeat("█", filled) + strings.Repeat("─", progressBarWidth-filled) + "]"

		state := "⏸"
		if m.player.Playing() {
			state = "▶"
		}
		volume := fmt.Sprintf("vol %.0f%%", m.player.Volume()*100)
		if m.player.Muted() {
			volume = "muted"
		}
		position := shared.FormatDuration(int(m.player.Position()))
		bar = fmt.Sprintf("%s %s %s/%s · %s", state, bar, position, shared.FormatDuration(m.player.Duration()), volume)
		if m.player.Fullscreen() {
			bar += " · fullscreen"
		}
	}

	var prompt string
	switch {
	case m.confirmComment:
		prompt = styles.warn.Render("Delete this comment? (y/n)")
	case m.commentFocused:
		prompt = m.commentInput.View()
	default:
		prompt = styles.help.Render("c: comment · d: delete comment · s: favorite · o: open · space: play/pause")
	}

	helpKeys := []key.Binding{m.keys.play, m.keys.mute, m.keys.full, m.keys.open, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s %s\n%s\n\n%s\n\n%s\n%s\n%s\n\n%s", title, star, meta, bar, m.commentList.View(), prompt, m.status, helpView)
}

func (m *Model) renderProfile() string {
	title := styles.title.Render("Profile")

	var details string
	if m.session != nil && m.session.User != nil {
		user := m.session.User
		details = fmt.Sprintf("Name: %s\nAge: %d\nEmail: %s", user.FullName(), user.Age, user.Email)
	} else {
		details = styles.help.Render("loading profile...")
	}

	var prompt string
	if m.confirmAccount {
		prompt = styles.warn.Render("Delete your account? This cannot be undone. (y/n)")
	} else {
		prompt = styles.help.Render("e: edit · d: delete account · esc: back")
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s\n%s", title, details, prompt, m.status)
}

func (m *Model) renderEditProfile() string {
	title := styles.title.Render("Edit Profile")
	hint := styles.help.Render("tab: next field · enter: save · esc: cancel")
	return fmt.Sprintf("%s\n\n%s\n%s\n%s", title, m.profileForm.View(m.formErrs), m.status, hint)
}
