// internal/store/memory.go
//
// In-memory implementation of the session Store interface. Sessions are
// deliberately ephemeral: the game holds no durable state, so a process
// restart starts everyone over.
//
// Characteristics:
//   - Stores *game.Session objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Errors are returned for missing session IDs on Get().

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/scramble/internal/game"
)

// ErrNotFound is returned by Get for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Store defines the holding interface for game sessions.
type Store interface {
	// Save adds or updates a session.
	Save(ctx context.Context, s *game.Session) error

	// Get retrieves a session by ID.
	// Returns ErrNotFound if the session is unknown.
	Get(ctx context.Context, id string) (*game.Session, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex             // guards sessions map
	sessions map[string]*game.Session // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*game.Session)}
}

// Save adds or updates the session in the map.
func (m *memory) Save(ctx context.Context, s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

// Get looks up a session by ID.
func (m *memory) Get(ctx context.Context, id string) (*game.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}
