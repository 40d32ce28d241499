package interfaces

import "context"

// Session owns one browser instance plus one isolated browsing context for
// the duration of a single request. Sessions are never shared or pooled
// across requests.
type Session interface {
	// Page returns the session's page handle.
	Page() Page

	// Release closes context and browser and frees the session permit.
	// Safe to call more than once; later calls are no-ops.
	Release() error
}

// SessionPool hands out sessions, bounding how many browsers are open at a
// time across concurrent requests.
type SessionPool interface {
	Acquire(ctx context.Context) (Session, error)
}
