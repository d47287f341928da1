package auth

import (
	"context"
	"sync"
	"time"
)

// InMemoryTokenStore holds tokens in process. Expiry is checked on read, so
// an expired token behaves exactly like an unknown one. Used by tests and
// single-node deployments.
type InMemoryTokenStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]tokenEntry
}

type tokenEntry struct {
	userID    string
	expiresAt time.Time
}

func NewInMemoryTokenStore(ttl time.Duration) *InMemoryTokenStore {
	return &InMemoryTokenStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]tokenEntry),
	}
}

func (s *InMemoryTokenStore) Issue(ctx context.Context, userID string) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := tokenEntry{userID: userID}
	if s.ttl > 0 {
		entry.expiresAt = s.now().Add(s.ttl)
	}
	s.entries[token] = entry
	return token, nil
}

func (s *InMemoryTokenStore) Resolve(ctx context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[token]
	if !ok {
		return "", ErrTokenInvalid
	}
	if !entry.expiresAt.IsZero() && s.now().After(entry.expiresAt) {
		delete(s.entries, token)
		return "", ErrTokenInvalid
	}
	return entry.userID, nil
}

func (s *InMemoryTokenStore) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}

var _ TokenStore = (*InMemoryTokenStore)(nil)
