package session

import (
	"context"
	"sync"
	"time"
)

type memEntry struct {
	id        Identity
	expiresAt time.Time
}

// MemoryStore is the no-dependency backend used in tests and single-binary
// demo runs. Sessions do not survive a restart.
type MemoryStore struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]memEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, data: map[string]memEntry{}}
}

func (s *MemoryStore) Save(_ context.Context, token string, id Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = memEntry{id: id, expiresAt: time.Now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (Identity, error) {
	s.mu.RLock()
	e, ok := s.data[token]
	s.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		return Identity{}, ErrNoSession
	}
	return e.id, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, token)
	return nil
}
