package credstore

import (
	"context"
	"sync"
)

// memStore is an in-memory [Store] used in tests and as a last-resort
// fallback when no private directory is available. Entries do not survive
// process restart.
type memStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemStore constructs an empty in-memory [Store].
func NewMemStore() Store {
	return &memStore{entries: make(map[string][]byte)}
}

func (m *memStore) Save(_ context.Context, identifier string, secret []byte) error {
	if identifier == "" {
		return ErrInvalidIdentifier
	}

	cp := make([]byte, len(secret))
	copy(cp, secret)

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, identifier)
	m.entries[identifier] = cp
	return nil
}

func (m *memStore) Load(_ context.Context, identifier string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	secret, ok := m.entries[identifier]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(secret))
	copy(cp, secret)
	return cp, nil
}

func (m *memStore) Delete(_ context.Context, identifier string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, identifier)
	return nil
}
