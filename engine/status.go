// Package engine wires the catalog, stream, selector, carousel, and display
// together into the running ambient display.
package engine

import "sync"

// Status holds the shared runtime flags consulted across components. Each
// field has exactly one writer: the engine sets authentication on startup and
// shutdown; everything else only reads.
type Status struct {
	mu            sync.Mutex
	authenticated bool
}

// NewStatus creates an unauthenticated status object.
func NewStatus() *Status {
	return &Status{}
}

// Authenticated reports whether the stored credentials are considered valid.
// The reconnect policy polls this to decide whether retrying is worthwhile.
func (s *Status) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// SetAuthenticated records the credential state. Engine-only.
func (s *Status) SetAuthenticated(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = v
}
