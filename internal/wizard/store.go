package wizard

import (
	"context"
	"errors"
	"sync"
)

// StorageKey is the fixed key the wizard snapshot is persisted under.
// Each session appends its id, see SessionKey.
const StorageKey = "ai-hediye-wizard-state"

var ErrNotFound = errors.New("wizard state not found")

// Store is a durable key-value store holding JSON-serialized wizard snapshots.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// SessionKey returns the storage key for one session.
func SessionKey(sessionID string) string {
	return StorageKey + ":" + sessionID
}

// InMemoryStore is a simple in-memory implementation useful for tests and
// local development.
type InMemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{data: make(map[string][]byte)}
}

func (s *InMemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *InMemoryStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
