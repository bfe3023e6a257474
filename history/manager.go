package history

import "sync"

// Manager hands out one Store per session so concurrent sessions never share
// mutable history.
type Manager struct {
	mu     sync.Mutex
	limit  int
	stores map[string]*Store
}

func NewManager(limit int) *Manager {
	return &Manager{limit: limit, stores: make(map[string]*Store)}
}

// Get returns the session's store, creating it on first use.
func (m *Manager) Get(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	store, ok := m.stores[sessionID]
	if !ok {
		store = NewStore(m.limit)
		m.stores[sessionID] = store
	}
	return store
}

func (m *Manager) Sessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.stores)
}
