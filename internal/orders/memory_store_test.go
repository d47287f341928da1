package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *MemoryStore {
	t.Helper()
	store := NewMemoryStore()
	require.NoError(t, Seed(context.Background(), store))
	return store
}

func TestRefundIDFor(t *testing.T) {
	assert.Equal(t, "REF-12345", RefundIDFor("ORD-12345"))
	// ids without the prefix still map deterministically
	assert.Equal(t, "REF-XYZ", RefundIDFor("XYZ"))
}

func TestOrderLookup(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	exists, err := store.OrderExists(ctx, "ORD-12345")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.OrderExists(ctx, "ORD-99999")
	require.NoError(t, err)
	assert.False(t, exists)

	order, err := store.Order(ctx, "ORD-12345")
	require.NoError(t, err)
	assert.Equal(t, "CUST-001", order.CustomerID)
	assert.Equal(t, "In Transit", order.Status)
	assert.NotEmpty(t, order.Timeline)

	_, err = store.Order(ctx, "ORD-99999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderHistoryNewestFirst(t *testing.T) {
	store := seededStore(t)

	history, err := store.OrderHistory(context.Background(), "CUST-001")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "ORD-12345", history[0].ID)
	assert.Equal(t, "ORD-67890", history[1].ID)

	empty, err := store.OrderHistory(context.Background(), "CUST-999")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCreateRefundRejectsDuplicate(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	refund := Refund{ID: "REF-12345", OrderID: "ORD-12345", Reason: "broken", Status: "pending"}
	require.NoError(t, store.CreateRefund(ctx, refund))

	err := store.CreateRefund(ctx, refund)
	assert.ErrorIs(t, err, ErrRefundExists)

	got, err := store.Refund(ctx, "REF-12345")
	require.NoError(t, err)
	assert.Equal(t, "broken", got.Reason)
}

func TestInvoiceLookups(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	byID, err := store.Invoice(ctx, "INV-2025-001")
	require.NoError(t, err)
	assert.Equal(t, "ORD-12345", byID.OrderID)

	byOrder, err := store.InvoiceByOrder(ctx, "ORD-12345")
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-001", byOrder.ID)

	_, err = store.InvoiceByOrder(ctx, "ORD-11111")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaymentLookup(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	payment, err := store.Payment(ctx, "ORD-12345")
	require.NoError(t, err)
	assert.Equal(t, "credit_card", payment.Method)
	assert.Equal(t, "captured", payment.Status)

	_, err = store.Payment(ctx, "ORD-11111")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEligibilityLookup(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	rec, err := store.Eligibility(ctx, "ORD-11111")
	require.NoError(t, err)
	assert.False(t, rec.Eligible)

	_, err = store.Eligibility(ctx, "ORD-99999")
	assert.ErrorIs(t, err, ErrNotFound)
}
