// Package tasks orchestrates favorites operations between the Movu backend and the local cache.
//
// # Core Operations
//
// The [FavoritesEngine] treats the server as the sole source of truth:
//
//  1. [FavoritesEngine.Refresh] : Fetch the server's favorites and replace the
//     local cache rows wholesale
//  2. [FavoritesEngine.Add] / [FavoritesEngine.Remove] : Mutate on the server,
//     then refresh the cache; a failed mutation leaves the cache untouched
//  3. [FavoritesEngine.Toggle] : Membership check followed by the matching
//     mutation
//  4. [FavoritesEngine.BulkExport] : Write the favorites list in several
//     formats and download thumbnails concurrently with a bounded worker pool
//     and client-side rate limiting
//
// # Progress Reporting
//
// Operations emit [ProgressUpdate] values on an optional channel for
// non-blocking status reporting to the CLI and TUI layers. Updates use select
// with default so a slow consumer never stalls an operation.
package tasks
