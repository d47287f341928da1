package catalog

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-process catalog used by tests and deployments that
// seed the catalog at startup. Reads are safe for concurrent use.
type MemoryStore struct {
	mu        sync.RWMutex
	products  map[string]Product
	inventory map[string]Inventory
	reviews   map[string]ReviewSummary
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products:  make(map[string]Product),
		inventory: make(map[string]Inventory),
		reviews:   make(map[string]ReviewSummary),
	}
}

func (s *MemoryStore) Products(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	// map iteration order is random; keep scans deterministic
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) Product(ctx context.Context, id string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (s *MemoryStore) Inventory(ctx context.Context, id string) (Inventory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.inventory[id]
	if !ok {
		return Inventory{}, ErrNotFound
	}
	return inv, nil
}

func (s *MemoryStore) Reviews(ctx context.Context, id string) (ReviewSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rs, ok := s.reviews[id]
	if !ok {
		return ReviewSummary{}, ErrNotFound
	}
	return rs, nil
}

func (s *MemoryStore) PutProduct(ctx context.Context, p Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
	return nil
}

func (s *MemoryStore) PutInventory(ctx context.Context, inv Inventory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory[inv.ProductID] = inv
	return nil
}

func (s *MemoryStore) PutReviews(ctx context.Context, rs ReviewSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews[rs.ProductID] = rs
	return nil
}

var _ Store = (*MemoryStore)(nil)
