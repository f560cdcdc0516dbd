package tui

import (
	"errors"
	"sync"
	"time"
)

// ErrServerFull is returned by SessionRegistry.Register when the limit is
// reached.
var ErrServerFull = errors.New("ssh: too many active sessions")

// ActiveSession describes one connected SSH client.
type ActiveSession struct {
	ID      string
	User    string
	Remote  string
	Started time.Time
}

// SessionRegistry tracks active sessions.
// Thread-safe for concurrent access.
type SessionRegistry struct {
	mu       sync.RWMutex
	limit    int
	sessions map[string]ActiveSession
}

// NewSessionRegistry creates a registry admitting at most limit sessions.
// A limit of zero or less means no limit.
func NewSessionRegistry(limit int) *SessionRegistry {
	return &SessionRegistry{
		limit:    limit,
		sessions: make(map[string]ActiveSession),
	}
}

// Register adds a session unless the registry is full.
func (r *SessionRegistry) Register(s ActiveSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.limit > 0 && len(r.sessions) >= r.limit {
		return ErrServerFull
	}
	r.sessions[s.ID] = s
	return nil
}

// Unregister removes a session. Unknown ids are ignored.
func (r *SessionRegistry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Get retrieves a session by ID.
func (r *SessionRegistry) Get(id string) (ActiveSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Count returns the number of registered sessions.
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
