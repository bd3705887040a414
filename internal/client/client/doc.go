// Package client contains the client-side building blocks that talk to the
// outside world: the store REST API and the local session database.
//
// # Overview
//
//  1. A transport-agnostic API contract (see the Client interface): Login,
//     Profile, ListUsers, CreateUser and ListProducts.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that tags every
//     request with an X-Request-ID, applies a per-request timeout, attaches
//     the bearer token where the endpoint needs one and maps HTTP statuses
//     to sentinel errors.
//  3. Local persistence bootstrap (OpenDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Transport conditions are exposed as sentinel errors that callers match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrUnexpectedStatus and
// ErrMalformedResponse. Remote error bodies are never surfaced.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Overlapping calls are neither
// deduplicated nor ordered. All operations honor context cancellation.
package client
