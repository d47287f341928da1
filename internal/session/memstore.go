package session

import (
	"context"
	"sync"
	"time"
)

// InMemoryStore holds product memory in process. Expiry is checked on read,
// so an entry past its TTL behaves exactly like a missing one. The zero TTL
// disables expiry. Used by tests and single-node deployments without Redis.
type InMemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

type memoryEntry struct {
	mem       ProductMemory
	expiresAt time.Time
}

func NewInMemoryStore(ttl time.Duration) *InMemoryStore {
	return &InMemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (s *InMemoryStore) Save(ctx context.Context, conversationID string, mem ProductMemory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := memoryEntry{mem: mem}
	if s.ttl > 0 {
		entry.expiresAt = s.now().Add(s.ttl)
	}
	s.entries[conversationID] = entry
	return nil
}

func (s *InMemoryStore) Load(ctx context.Context, conversationID string) (ProductMemory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[conversationID]
	if !ok {
		return ProductMemory{}, ErrNotFound
	}
	if !entry.expiresAt.IsZero() && s.now().After(entry.expiresAt) {
		delete(s.entries, conversationID)
		return ProductMemory{}, ErrNotFound
	}
	return entry.mem, nil
}

func (s *InMemoryStore) Clear(ctx context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, conversationID)
	return nil
}

var _ MemoryStore = (*InMemoryStore)(nil)
