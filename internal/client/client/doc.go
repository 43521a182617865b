// Package client contains client-side building blocks for PeerSphere.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     every backend endpoint: health, auth, groups, decks, flashcards,
//     notes, messages and calendar events.
//  2. A concrete REST implementation (see RESTClient) built around one
//     generic Request method. Each response is resolved once into a Body,
//     either JSONBody or TextBody, and failures are normalized.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations)
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// HTTP failures are returned as *APIError (use errors.As). Transport
// failures wrap ErrUnavailable and bodies that cannot be decoded wrap
// ErrMalformedResponse (use errors.Is). Nothing is retried.
//
// Concurrency & Contexts
//
// RESTClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation; no timeout is imposed by the
// client itself.
//
// See Also
//
//   - Interface:  Client
//   - REST impl:  RESTClient, Request, Body
//   - DB helpers: InitDatabase, RunMigrations
//   - Errors:     APIError, ErrUnavailable, ErrMalformedResponse
package client
