package tools

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/cloudwego/eino/components/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront-support/server/internal/catalog"
	"github.com/storefront-support/server/internal/orders"
	"github.com/storefront-support/server/internal/refund"
	"github.com/storefront-support/server/internal/search"
	"github.com/storefront-support/server/internal/session"
)

func testDeps(t *testing.T) *Deps {
	t.Helper()
	ctx := context.Background()

	catalogStore := catalog.NewMemoryStore()
	require.NoError(t, catalog.Seed(ctx, catalogStore))
	orderStore := orders.NewMemoryStore()
	require.NoError(t, orders.Seed(ctx, orderStore))

	sessions := session.NewInMemoryStore(time.Minute)
	// no embedding provider: the search tool exercises the keyword fallback
	engine := search.NewEngine(catalogStore, nil, sessions)

	return NewDeps(engine, catalogStore, orderStore, refund.NewPipeline(orderStore), sessions)
}

func invoke(t *testing.T, bt tool.BaseTool, args string, out any) {
	t.Helper()
	inv, ok := bt.(tool.InvokableTool)
	require.True(t, ok)

	raw, err := inv.InvokableRun(context.Background(), args)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(raw), out))
}

func TestSearchProductsToolKeywordFallback(t *testing.T) {
	d := testDeps(t)

	var out SearchProductsOutput
	invoke(t, newSearchProductsTool(d), `{"query":"laptops"}`, &out)

	assert.Equal(t, StatusSuccess, out.Status)
	assert.Equal(t, "keyword", out.Method)
	assert.Equal(t, 2, out.Total)
}

func TestSearchProductsToolNoResults(t *testing.T) {
	d := testDeps(t)

	var out SearchProductsOutput
	invoke(t, newSearchProductsTool(d), `{"query":"submarine"}`, &out)

	assert.Equal(t, StatusNoResults, out.Status)
	assert.Zero(t, out.Total)
	assert.NotEmpty(t, out.Message)
}

func TestGetProductDetailsTool(t *testing.T) {
	d := testDeps(t)

	var out GetProductDetailsOutput
	invoke(t, newGetProductDetailsTool(d), `{"product_id":"PROD-001"}`, &out)
	require.Equal(t, StatusSuccess, out.Status)
	assert.Equal(t, "ProBook Laptop 15", out.Product.Name)

	// the conversation now remembers this product
	mem, err := d.Sessions.Load(context.Background(), "adhoc")
	require.NoError(t, err)
	assert.Equal(t, "PROD-001", mem.LastProductID)
	assert.Contains(t, mem.DetailedIDs, "PROD-001")

	var missing GetProductDetailsOutput
	invoke(t, newGetProductDetailsTool(d), `{"product_id":"PROD-999"}`, &missing)
	assert.Equal(t, StatusNotFound, missing.Status)
}

func TestGetLastMentionedProductTool(t *testing.T) {
	d := testDeps(t)

	var empty GetLastProductOutput
	invoke(t, newGetLastMentionedProductTool(d), `{}`, &empty)
	assert.Equal(t, StatusNotFound, empty.Status)

	var details GetProductDetailsOutput
	invoke(t, newGetProductDetailsTool(d), `{"product_id":"PROD-002"}`, &details)
	require.Equal(t, StatusSuccess, details.Status)

	var out GetLastProductOutput
	invoke(t, newGetLastMentionedProductTool(d), `{}`, &out)
	assert.Equal(t, StatusSuccess, out.Status)
	assert.Equal(t, "PROD-002", out.ProductID)
	assert.Equal(t, "Wireless Headphones Pro", out.Name)
}

func TestTrackOrderTool(t *testing.T) {
	d := testDeps(t)

	var out TrackOrderOutput
	invoke(t, newTrackOrderTool(d), `{"order_id":"ORD-12345"}`, &out)
	require.Equal(t, StatusSuccess, out.Status)
	assert.Equal(t, "In Transit", out.Order.Status)

	var missing TrackOrderOutput
	invoke(t, newTrackOrderTool(d), `{"order_id":"ORD-99999"}`, &missing)
	assert.Equal(t, StatusNotFound, missing.Status)
}

func TestRefundStepTools(t *testing.T) {
	d := testDeps(t)

	var validation ValidateOrderIDOutput
	invoke(t, newValidateOrderIDTool(d), `{"order_id":"ORD-12345"}`, &validation)
	assert.Equal(t, "valid", validation.Status)

	var eligibility CheckRefundEligibilityOutput
	invoke(t, newCheckRefundEligibilityTool(d), `{"order_id":"ORD-12345"}`, &eligibility)
	assert.Equal(t, "success", eligibility.Status)
	assert.True(t, eligibility.Eligible)

	var paused ProcessRefundOutput
	invoke(t, newProcessRefundTool(d), `{"order_id":"ORD-12345"}`, &paused)
	assert.Equal(t, "missing_reason", paused.Status)

	var done ProcessRefundOutput
	invoke(t, newProcessRefundTool(d), `{"order_id":"ORD-12345","reason":"cracked screen"}`, &done)
	assert.Equal(t, "success", done.Status)
	assert.Equal(t, "REF-12345", done.RefundID)
}

func TestRequestRefundToolFullWorkflow(t *testing.T) {
	d := testDeps(t)

	var paused RequestRefundOutput
	invoke(t, newRequestRefundTool(d), `{"order_id":"ORD-12345"}`, &paused)
	assert.Equal(t, "missing_reason", paused.Status)
	assert.Equal(t, "awaiting_reason", paused.State)

	var done RequestRefundOutput
	invoke(t, newRequestRefundTool(d), `{"order_id":"ORD-12345","reason":"cracked screen"}`, &done)
	assert.Equal(t, StatusSuccess, done.Status)
	assert.Equal(t, "refund_processed", done.State)
	assert.Equal(t, "REF-12345", done.RefundID)

	var ineligible RequestRefundOutput
	invoke(t, newRequestRefundTool(d), `{"order_id":"ORD-11111","reason":"too late"}`, &ineligible)
	assert.Equal(t, StatusError, ineligible.Status)
	assert.Equal(t, "abort_ineligible", ineligible.State)
}

func TestQueryToolsExposeAllTools(t *testing.T) {
	d := testDeps(t)
	ts := QueryTools(d)
	require.Len(t, ts, 14)

	infos, err := ToolInfos(context.Background(), ts)
	require.NoError(t, err)

	names := make(map[string]bool, len(infos))
	for _, info := range infos {
		names[info.Name] = true
	}
	assert.True(t, names[ToolSearchProducts])
	assert.True(t, names[ToolRequestRefund])
	assert.True(t, names[ToolGetInvoice])
}
