// Package models defines domain entities and persistence interfaces for the Movu client.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): Lightweight structs mirroring Movu API payloads
//   - [User] : Account profile owned by the backend
//   - [Video] : Denormalized catalog snapshot (thumbnail, playable files)
//   - [Favorite] : A (user, video) association carrying the video snapshot
//   - [Comment] : Comment on the video page
//   - [Session] : The locally stored current-user identity
//
// 2. Persistent Entities: Locally cached rows with full lifecycle management
//   - [CachedFavorite] : Server-backed favorite mirrored into the local cache
//
// Persistent entities implement the [Model] interface providing ID generation, timestamps,
// validation, and soft delete support. The Repository[T] interface defines standard CRUD
// operations for local database access.
//
// The backend remains the source of truth for every DTO; locally cached copies are advisory.
package models
