package prompts

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/storefront-support/server/internal/agent/model"
	"github.com/storefront-support/server/internal/agent/tools"
)

//go:embed template/system_prompt.txt
var coreSystemPrompt string

// RenderSystem renders the support agent system prompt and triggers prompt callbacks.
func RenderSystem(ctx context.Context, config model.PromptConfig) (string, error) {
	// Render via Eino prompt component (Go template) to both format and emit callbacks
	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(coreSystemPrompt),
	)
	vars := map[string]any{
		"BusinessType":      config.BusinessType,
		"BusinessName":      config.BusinessName,
		"SearchTool":        tools.ToolSearchProducts,
		"DetailsTool":       tools.ToolGetProductDetails,
		"LastProductTool":   tools.ToolGetLastProduct,
		"SavedProductsTool": tools.ToolGetAllSavedProducts,
		"InventoryTool":     tools.ToolCheckInventory,
		"ReviewsTool":       tools.ToolGetProductReviews,
		"TrackOrderTool":    tools.ToolTrackOrder,
		"OrderHistoryTool":  tools.ToolGetOrderHistory,
		"InvoiceTool":       tools.ToolGetInvoice,
		"PaymentTool":       tools.ToolCheckPaymentStatus,
		"RequestRefundTool": tools.ToolRequestRefund,
	}
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("system prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("system prompt render: empty result")
	}
	return msgs[0].Content, nil
}
