// Package services implements the HTTP clients for the Movu backend.
//
// # Service Interface
//
// [Service] is the full client contract against the Movu REST API
// ({base_url}/api/v1): sessions, users, password reset, favorites, the Pexels
// catalog proxy, and comments. [MovuService] is the production implementation.
//
// # Failure Semantics
//
// Transport failures are wrapped in [shared.ErrAPIRequest]. Non-2xx responses
// are decoded into the server-supplied error text (JSON "error" or "message"
// field) and surfaced verbatim, with a generic fallback when the body carries
// neither. No request is retried; the single exception is the password-reset
// request, which falls back once to the legacy /password/request path when
// the primary path answers 404.
//
// [MovuService.DeleteUser] never raises: any failure degrades to false.
//
// # Rate Limiting
//
// Catalog searches pass through a client-side [rate.Limiter] so rapid
// dashboard queries cannot hammer the Pexels proxy.
//
// # Raw Client
//
// [APIService] performs raw GET/POST calls against the same base URL for the
// `movu api` debugging commands.
package services
