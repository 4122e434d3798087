// Package client contains the Zenora client's boundary to the outside world.
//
// # Overview
//
// The package provides:
//  1. The collaborator contract (see the Client interface) for the Zenora
//     backend: Login/Signup, assessment save/list, journal and mood logs.
//  2. A JSON-over-HTTP implementation (see HTTPClient) that attaches the
//     current session credential as a bearer token, bounds every attempt
//     with a timeout, retries transport failures once, and maps HTTP
//     statuses to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrMalformedResponse.
// Rejections that carry a backend message are *APIError.
package client
