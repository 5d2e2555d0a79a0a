package encounter

import (
	"sort"
	"sync"

	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
	"github.com/KirkDiggler/dungeon-combat/internal/uuid"
)

// Manager creates sessions and keeps them addressable by ID
type Manager struct {
	mu            sync.RWMutex
	sessions      map[string]*Session
	base          SessionConfig
	uuidGenerator uuid.Generator
}

// ManagerConfig holds configuration for the manager
type ManagerConfig struct {
	// Session is the template every new session is built from; its ID is ignored
	Session       SessionConfig
	UUIDGenerator uuid.Generator
}

// NewManager creates a session manager
func NewManager(cfg *ManagerConfig) *Manager {
	if cfg == nil || cfg.Session.Roller == nil {
		panic("dice roller is required")
	}

	m := &Manager{
		sessions: make(map[string]*Session),
		base:     cfg.Session,
	}

	if cfg.UUIDGenerator != nil {
		m.uuidGenerator = cfg.UUIDGenerator
	} else {
		m.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return m
}

// Create builds and registers an idle session
func (m *Manager) Create() *Session {
	cfg := m.base
	cfg.ID = m.uuidGenerator.New()
	session := NewSession(&cfg)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[session.ID()] = session
	return session
}

// Get retrieves a session by ID
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[id]
	if !exists {
		return nil, combaterr.NotFoundf("session %s not found", id)
	}
	return session, nil
}

// Delete removes a session
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[id]; !exists {
		return combaterr.NotFoundf("session %s not found", id)
	}
	delete(m.sessions, id)
	return nil
}

// List returns the registered session IDs, sorted
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
