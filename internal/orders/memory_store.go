package orders

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-process order store for tests and demo seeding.
type MemoryStore struct {
	mu          sync.RWMutex
	orders      map[string]Order
	eligibility map[string]EligibilityRecord
	refunds     map[string]Refund
	invoices    map[string]Invoice
	byOrder     map[string]string // order id -> invoice id
	payments    map[string]Payment
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		orders:      make(map[string]Order),
		eligibility: make(map[string]EligibilityRecord),
		refunds:     make(map[string]Refund),
		invoices:    make(map[string]Invoice),
		byOrder:     make(map[string]string),
		payments:    make(map[string]Payment),
	}
}

func (s *MemoryStore) OrderExists(ctx context.Context, orderID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.orders[orderID]
	return ok, nil
}

func (s *MemoryStore) Order(ctx context.Context, orderID string) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[orderID]
	if !ok {
		return Order{}, ErrNotFound
	}
	return o, nil
}

func (s *MemoryStore) OrderHistory(ctx context.Context, customerID string) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Order
	for _, o := range s.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (s *MemoryStore) Eligibility(ctx context.Context, orderID string) (EligibilityRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.eligibility[orderID]
	if !ok {
		return EligibilityRecord{}, ErrNotFound
	}
	return rec, nil
}

func (s *MemoryStore) CreateRefund(ctx context.Context, refund Refund) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.refunds[refund.ID]; ok {
		return ErrRefundExists
	}
	s.refunds[refund.ID] = refund
	return nil
}

func (s *MemoryStore) Refund(ctx context.Context, refundID string) (Refund, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.refunds[refundID]
	if !ok {
		return Refund{}, ErrNotFound
	}
	return r, nil
}

func (s *MemoryStore) Invoice(ctx context.Context, invoiceID string) (Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv, ok := s.invoices[invoiceID]
	if !ok {
		return Invoice{}, ErrNotFound
	}
	return inv, nil
}

func (s *MemoryStore) InvoiceByOrder(ctx context.Context, orderID string) (Invoice, error) {
	s.mu.RLock()
	invoiceID, ok := s.byOrder[orderID]
	s.mu.RUnlock()
	if !ok {
		return Invoice{}, ErrNotFound
	}
	return s.Invoice(ctx, invoiceID)
}

func (s *MemoryStore) Payment(ctx context.Context, orderID string) (Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.payments[orderID]
	if !ok {
		return Payment{}, ErrNotFound
	}
	return p, nil
}

func (s *MemoryStore) PutOrder(ctx context.Context, o Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
	return nil
}

func (s *MemoryStore) PutEligibility(ctx context.Context, rec EligibilityRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eligibility[rec.OrderID] = rec
	return nil
}

func (s *MemoryStore) PutInvoice(ctx context.Context, inv Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices[inv.ID] = inv
	if inv.OrderID != "" {
		s.byOrder[inv.OrderID] = inv.ID
	}
	return nil
}

func (s *MemoryStore) PutPayment(ctx context.Context, p Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[p.OrderID] = p
	return nil
}

var _ Store = (*MemoryStore)(nil)
