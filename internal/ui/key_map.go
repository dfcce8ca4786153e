package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	back    key.Binding
	tab     key.Binding
	yes     key.Binding
	no      key.Binding
	search  key.Binding
	favs    key.Binding
	profile key.Binding
	star    key.Binding
	open    key.Binding
	play    key.Binding
	mute    key.Binding
	full    key.Binding
	comment key.Binding
	del     key.Binding
	logout  key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		yes:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		no:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		favs:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorites")),
		profile: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
		star:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "favorite")),
		open:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open in browser")),
		play:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		mute:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		full:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fullscreen")),
		comment: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "comment")),
		del:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		logout:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "log out")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.back},
		{k.search, k.favs, k.profile, k.star, k.open},
		{k.play, k.mute, k.full, k.comment},
		{k.del, k.logout, k.quit},
	}
}
