package refund

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront-support/server/internal/orders"
	"github.com/storefront-support/server/internal/session"
)

func testStore(t *testing.T) *orders.MemoryStore {
	t.Helper()
	store := orders.NewMemoryStore()
	require.NoError(t, orders.Seed(context.Background(), store))
	return store
}

func testTurn(t *testing.T) session.TurnContext {
	t.Helper()
	turn, err := session.NewTurnContext("conv-1", "CUST-001", "test")
	require.NoError(t, err)
	return turn
}

func TestValidateOrder(t *testing.T) {
	p := NewPipeline(testStore(t))
	ctx := context.Background()
	turn := testTurn(t)

	result, err := p.ValidateOrder(ctx, turn, "ORD-12345")
	require.NoError(t, err)
	assert.Equal(t, StatusValid, result.Status)

	result, err = p.ValidateOrder(ctx, turn, "ORD-99999")
	require.NoError(t, err)
	assert.Equal(t, StatusInvalid, result.Status)
}

func TestCheckEligibility(t *testing.T) {
	p := NewPipeline(testStore(t))
	ctx := context.Background()
	turn := testTurn(t)

	eligible, err := p.CheckEligibility(ctx, turn, "ORD-12345")
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, eligible.Status)
	assert.True(t, eligible.Eligible)
	assert.Equal(t, 1295.98, eligible.MaxRefund)

	ineligible, err := p.CheckEligibility(ctx, turn, "ORD-11111")
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, ineligible.Status)
	assert.False(t, ineligible.Eligible)
	assert.Equal(t, "Past 30-day return window", ineligible.Reason)

	missing, err := p.CheckEligibility(ctx, turn, "ORD-99999")
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, missing.Status)
}

func TestProcessRefundRequiresReason(t *testing.T) {
	p := NewPipeline(testStore(t))

	result, err := p.ProcessRefund(context.Background(), testTurn(t), "ORD-12345", "")
	require.NoError(t, err)
	assert.Equal(t, StatusMissingReason, result.Status)
	assert.Empty(t, result.RefundID)
}

func TestProcessRefundCreatesRecord(t *testing.T) {
	store := testStore(t)
	p := NewPipeline(store)
	ctx := context.Background()

	result, err := p.ProcessRefund(ctx, testTurn(t), "ORD-12345", "broken item")
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, "REF-12345", result.RefundID)

	rec, err := store.Refund(ctx, "REF-12345")
	require.NoError(t, err)
	assert.Equal(t, "ORD-12345", rec.OrderID)
	assert.Equal(t, "broken item", rec.Reason)
	assert.Equal(t, "pending", rec.Status)
}

func TestProcessRefundRejectsDuplicate(t *testing.T) {
	p := NewPipeline(testStore(t))
	ctx := context.Background()
	turn := testTurn(t)

	first, err := p.ProcessRefund(ctx, turn, "ORD-67890", "wrong size")
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, first.Status)

	second, err := p.ProcessRefund(ctx, turn, "ORD-67890", "changed my mind")
	require.NoError(t, err)
	assert.Equal(t, StatusError, second.Status)
	assert.Equal(t, "REF-67890", second.RefundID)
	assert.Contains(t, second.Message, "already been submitted")
}

func TestRunHappyPath(t *testing.T) {
	p := NewPipeline(testStore(t))

	out, err := p.Run(context.Background(), testTurn(t), "ORD-12345", "arrived with a cracked screen")
	require.NoError(t, err)
	assert.Equal(t, StateRefundProcessed, out.State)
	assert.Equal(t, "REF-12345", out.RefundID)
	assert.Equal(t, OrderValid, out.Gate.Order)
	assert.Equal(t, Eligible, out.Gate.Eligibility)
	assert.False(t, out.Gate.Aborted)
	assert.NotEmpty(t, out.Message)
}

func TestRunAbortsOnUnknownOrder(t *testing.T) {
	p := NewPipeline(testStore(t))

	out, err := p.Run(context.Background(), testTurn(t), "ORD-99999", "whatever")
	require.NoError(t, err)
	assert.Equal(t, StateAbortInvalidOrder, out.State)
	assert.Equal(t, OrderInvalid, out.Gate.Order)
	assert.True(t, out.Gate.Aborted)
	// the eligibility stage never ran
	assert.Equal(t, EligibilityUnchecked, out.Gate.Eligibility)
	assert.Empty(t, out.RefundID)
}

func TestRunAbortsOnIneligibleOrder(t *testing.T) {
	store := testStore(t)
	p := NewPipeline(store)
	ctx := context.Background()

	out, err := p.Run(ctx, testTurn(t), "ORD-11111", "no longer needed")
	require.NoError(t, err)
	assert.Equal(t, StateAbortIneligible, out.State)
	assert.Equal(t, Ineligible, out.Gate.Eligibility)
	assert.True(t, out.Gate.Aborted)
	assert.Contains(t, out.Message, "Past 30-day return window")

	// no refund record was written
	_, err = store.Refund(ctx, "REF-11111")
	assert.ErrorIs(t, err, orders.ErrNotFound)
}

func TestRunSuspendsOnMissingReason(t *testing.T) {
	store := testStore(t)
	p := NewPipeline(store)
	ctx := context.Background()
	turn := testTurn(t)

	out, err := p.Run(ctx, turn, "ORD-12345", "")
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingReason, out.State)
	assert.False(t, out.Gate.Aborted)
	assert.Empty(t, out.RefundID)

	// supplying the reason completes the suspended workflow
	out, err = p.Run(ctx, turn, "ORD-12345", "doesn't fit my desk")
	require.NoError(t, err)
	assert.Equal(t, StateRefundProcessed, out.State)
	assert.Equal(t, "REF-12345", out.RefundID)
}

func TestRunRejectsDuplicateRefund(t *testing.T) {
	p := NewPipeline(testStore(t))
	ctx := context.Background()
	turn := testTurn(t)

	first, err := p.Run(ctx, turn, "ORD-22222", "ordered by mistake")
	require.NoError(t, err)
	require.Equal(t, StateRefundProcessed, first.State)

	second, err := p.Run(ctx, turn, "ORD-22222", "still want it refunded")
	require.NoError(t, err)
	assert.Equal(t, StateAbortDuplicateRefund, second.State)
	assert.True(t, second.Gate.Aborted)
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "start", StateStart.String())
	assert.Equal(t, "refund_processed", StateRefundProcessed.String())
	assert.Equal(t, "abort_duplicate_refund", StateAbortDuplicateRefund.String())
	assert.Equal(t, "awaiting_reason", StateAwaitingReason.String())
	assert.Equal(t, "eligible", Eligible.String())
	assert.Equal(t, "invalid", OrderInvalid.String())
}
