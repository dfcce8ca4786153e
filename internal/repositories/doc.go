// Package repositories implements SQLite persistence for the client's local state.
//
// Two stores exist:
//   - [SessionRepository] : the single current-user session row (identifier plus
//     a denormalized profile snapshot), written on login and read by every page
//     that needs identity
//   - [FavoriteCacheRepository] : a read cache of the server-backed favorites,
//     UNIQUE on (user_id, video_id), replaced wholesale on every refresh
//
// The backend is the source of truth for everything in here; nothing is ever
// reconciled back to the server. Cache rows support soft deletes via
// deleted_at timestamps and atomic sequence generation through [NextSequence]
// for stable human-readable ordering.
package repositories
