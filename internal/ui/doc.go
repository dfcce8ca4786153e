// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing the Movu catalog:
//  1. [LoginView] / [RegisterView] : Authenticate or create an account
//  2. [DashboardView] : Search the catalog and browse results
//  3. [FavoritesView] : Manage the signed-in user's favorites
//  4. [VideoView] : Playback controls, favorite toggle, and comments
//  5. [ProfileView] / [EditProfileView] : View and edit account details
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
// All network calls run as [tea.Cmd] functions so the event loop never blocks on the Movu API.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
