package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	errx "github.com/storefront-support/server/internal/core/error"
	logx "github.com/storefront-support/server/pkg/logger"
)

// RedisStore keeps orders, eligibility records, refunds and billing documents
// in Redis as JSON values. Refund creation uses SETNX so a duplicate attempt
// for the same order is rejected instead of overwriting the first record.
type RedisStore struct {
	rdb redis.Cmdable
}

func NewRedisStore(rdb redis.Cmdable) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func orderKey(id string) string        { return fmt.Sprintf("orders:%s", id) }
func customerKey(id string) string     { return fmt.Sprintf("orders:customer:%s", id) }
func eligibilityKey(id string) string  { return fmt.Sprintf("refund_eligibility:%s", id) }
func refundKey(id string) string       { return fmt.Sprintf("refunds:%s", id) }
func invoiceKey(id string) string      { return fmt.Sprintf("invoices:%s", id) }
func orderInvoiceKey(id string) string { return fmt.Sprintf("invoices:order:%s", id) }
func paymentKey(id string) string      { return fmt.Sprintf("payments:%s", id) }

func (s *RedisStore) getJSON(ctx context.Context, key string, v any) error {
	raw, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return ErrNotFound
	}
	if err != nil {
		return errx.WrapRedis(err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) setJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.rdb.Set(ctx, key, b, 0).Err(); err != nil {
		return errx.WrapRedis(err)
	}
	return nil
}

func (s *RedisStore) OrderExists(ctx context.Context, orderID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, orderKey(orderID)).Result()
	if err != nil {
		return false, errx.WrapRedis(err)
	}
	return n > 0, nil
}

func (s *RedisStore) Order(ctx context.Context, orderID string) (Order, error) {
	var o Order
	if err := s.getJSON(ctx, orderKey(orderID), &o); err != nil {
		return Order{}, err
	}
	return o, nil
}

func (s *RedisStore) OrderHistory(ctx context.Context, customerID string) ([]Order, error) {
	ids, err := s.rdb.SMembers(ctx, customerKey(customerID)).Result()
	if err != nil {
		return nil, errx.WrapRedis(err)
	}

	out := make([]Order, 0, len(ids))
	for _, id := range ids {
		o, err := s.Order(ctx, id)
		if err != nil {
			logx.Warn().Str("order_id", id).Err(err).Msg("indexed order missing")
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (s *RedisStore) Eligibility(ctx context.Context, orderID string) (EligibilityRecord, error) {
	var rec EligibilityRecord
	if err := s.getJSON(ctx, eligibilityKey(orderID), &rec); err != nil {
		return EligibilityRecord{}, err
	}
	return rec, nil
}

func (s *RedisStore) CreateRefund(ctx context.Context, refund Refund) error {
	b, err := json.Marshal(refund)
	if err != nil {
		return fmt.Errorf("marshal refund %s: %w", refund.ID, err)
	}
	ok, err := s.rdb.SetNX(ctx, refundKey(refund.ID), b, 0).Result()
	if err != nil {
		return errx.WrapRedis(err)
	}
	if !ok {
		return ErrRefundExists
	}
	return nil
}

func (s *RedisStore) Refund(ctx context.Context, refundID string) (Refund, error) {
	var r Refund
	if err := s.getJSON(ctx, refundKey(refundID), &r); err != nil {
		return Refund{}, err
	}
	return r, nil
}

func (s *RedisStore) Invoice(ctx context.Context, invoiceID string) (Invoice, error) {
	var inv Invoice
	if err := s.getJSON(ctx, invoiceKey(invoiceID), &inv); err != nil {
		return Invoice{}, err
	}
	return inv, nil
}

func (s *RedisStore) InvoiceByOrder(ctx context.Context, orderID string) (Invoice, error) {
	invoiceID, err := s.rdb.Get(ctx, orderInvoiceKey(orderID)).Result()
	if err == redis.Nil {
		return Invoice{}, ErrNotFound
	}
	if err != nil {
		return Invoice{}, errx.WrapRedis(err)
	}
	return s.Invoice(ctx, invoiceID)
}

func (s *RedisStore) Payment(ctx context.Context, orderID string) (Payment, error) {
	var p Payment
	if err := s.getJSON(ctx, paymentKey(orderID), &p); err != nil {
		return Payment{}, err
	}
	return p, nil
}

// PutOrder writes an order document and indexes it by customer.
func (s *RedisStore) PutOrder(ctx context.Context, o Order) error {
	if err := s.setJSON(ctx, orderKey(o.ID), o); err != nil {
		return err
	}
	if o.CustomerID != "" {
		if err := s.rdb.SAdd(ctx, customerKey(o.CustomerID), o.ID).Err(); err != nil {
			return errx.WrapRedis(err)
		}
	}
	return nil
}

// PutEligibility writes an eligibility record.
func (s *RedisStore) PutEligibility(ctx context.Context, rec EligibilityRecord) error {
	return s.setJSON(ctx, eligibilityKey(rec.OrderID), rec)
}

// PutInvoice writes an invoice and its order index entry.
func (s *RedisStore) PutInvoice(ctx context.Context, inv Invoice) error {
	if err := s.setJSON(ctx, invoiceKey(inv.ID), inv); err != nil {
		return err
	}
	if inv.OrderID != "" {
		if err := s.rdb.Set(ctx, orderInvoiceKey(inv.OrderID), inv.ID, 0).Err(); err != nil {
			return errx.WrapRedis(err)
		}
	}
	return nil
}

// PutPayment writes a payment record.
func (s *RedisStore) PutPayment(ctx context.Context, p Payment) error {
	return s.setJSON(ctx, paymentKey(p.OrderID), p)
}

var _ Store = (*RedisStore)(nil)
