package tools

import (
	"context"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/storefront-support/server/internal/agent/model"
	"github.com/storefront-support/server/internal/catalog"
	"github.com/storefront-support/server/internal/orders"
	"github.com/storefront-support/server/internal/refund"
	"github.com/storefront-support/server/internal/search"
	"github.com/storefront-support/server/internal/session"
)

// Tool names as bound to the response model.
const (
	ToolSearchProducts       = "search_products"
	ToolGetProductDetails    = "get_product_details"
	ToolGetLastProduct       = "get_last_mentioned_product"
	ToolGetAllSavedProducts  = "get_all_saved_products_info"
	ToolCheckInventory       = "check_inventory"
	ToolGetProductReviews    = "get_product_reviews"
	ToolTrackOrder           = "track_order"
	ToolGetOrderHistory      = "get_order_history"
	ToolGetInvoice           = "get_invoice"
	ToolCheckPaymentStatus   = "check_payment_status"
	ToolValidateOrderID      = "validate_order_id"
	ToolCheckRefundEligible  = "check_refund_eligibility"
	ToolProcessRefund        = "process_refund"
	ToolRequestRefund        = "request_refund"
)

// Structured outcome statuses crossing the tool boundary. The status field is
// the only channel signaling success or failure to the model; tools never
// return Go errors for expected business outcomes.
const (
	StatusSuccess   = "success"
	StatusNotFound  = "not_found"
	StatusNoResults = "no_results"
	StatusInvalid   = "invalid"
	StatusError     = "error"
)

const defaultAppName = "storefront-support"

// Deps bundles everything the support tools operate on.
type Deps struct {
	Engine   *search.Engine
	Catalog  catalog.Store
	Orders   orders.Store
	Pipeline *refund.Pipeline
	Sessions session.MemoryStore
	AppName  string
}

func NewDeps(engine *search.Engine, cat catalog.Store, ord orders.Store, pipeline *refund.Pipeline, sessions session.MemoryStore) *Deps {
	return &Deps{
		Engine:   engine,
		Catalog:  cat,
		Orders:   ord,
		Pipeline: pipeline,
		Sessions: sessions,
		AppName:  defaultAppName,
	}
}

// turn builds the typed per-turn context from graph state. Tools run inside
// the graph, so the state carries the conversation and user identity; ad-hoc
// invocations outside a conversation fall back to anonymous identifiers.
func (d *Deps) turn(ctx context.Context) session.TurnContext {
	conversationID, userID := "", ""
	_ = compose.ProcessState(ctx, func(_ context.Context, s *model.AppState) error {
		conversationID = s.ConversationID
		userID = s.UserID
		return nil
	})
	if conversationID == "" {
		conversationID = "adhoc"
	}
	if userID == "" {
		userID = "anonymous"
	}

	tc, err := session.NewTurnContext(conversationID, userID, d.AppName)
	if err != nil {
		// only reachable with an empty app name; keep the tool usable
		tc = session.TurnContext{ConversationID: conversationID, UserID: userID, AppName: defaultAppName}
	}
	return tc
}

// QueryTools returns every tool bound to the response model.
func QueryTools(d *Deps) []tool.BaseTool {
	return []tool.BaseTool{
		newSearchProductsTool(d),
		newGetProductDetailsTool(d),
		newGetLastMentionedProductTool(d),
		newGetAllSavedProductsTool(d),
		newCheckInventoryTool(d),
		newGetProductReviewsTool(d),
		newTrackOrderTool(d),
		newGetOrderHistoryTool(d),
		newGetInvoiceTool(d),
		newCheckPaymentStatusTool(d),
		newValidateOrderIDTool(d),
		newCheckRefundEligibilityTool(d),
		newProcessRefundTool(d),
		newRequestRefundTool(d),
	}
}

// ToolInfos resolves the schema info for a set of tools.
func ToolInfos(ctx context.Context, ts []tool.BaseTool) ([]*schema.ToolInfo, error) {
	infos := make([]*schema.ToolInfo, 0, len(ts))
	for _, t := range ts {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}
