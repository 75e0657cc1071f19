// Package api contains the public interfaces of the wire-protocol engine.
// Execution strategies and lifecycle helpers are written against these
// interfaces rather than concrete types.
package api

import "context"

// Executor executes a single wire-protocol command: it encodes body,
// performs one HTTP exchange described by method and path, and decodes the
// reply value into res. Path templates may reference the current session id
// with ":sessionId". Commands run strictly one at a time; an Executor is
// owned by a single goroutine.
type Executor interface {
	Execute(ctx context.Context, method, path string, body, res any) error
}

// Session is an Executor bound to at most one server-side automation
// session.
type Session interface {
	Executor

	// ID returns the server-issued session id, or "" when no session has
	// been created yet.
	ID() string

	// Close terminates the server-side session. Closing is not idempotent
	// at the protocol boundary.
	Close(ctx context.Context) error
}
