package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/storefront-support/server/internal/catalog"
	"github.com/storefront-support/server/internal/session"
	logx "github.com/storefront-support/server/pkg/logger"
)

type GetProductDetailsInput struct {
	ProductID string `json:"product_id"`
}

type GetProductDetailsOutput struct {
	Status  string           `json:"status"`
	Product *catalog.Product `json:"product,omitempty"`
	Message string           `json:"message,omitempty"`
}

func newGetProductDetailsTool(d *Deps) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolGetProductDetails,
			Desc: "Get full details for one product: description, price, rating, warranty. Use when the customer asks about a specific product from search results.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_id": {
					Type:     "string",
					Desc:     "Product ID from search results (e.g. PROD-001).",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *GetProductDetailsInput) (*GetProductDetailsOutput, error) {
			if in.ProductID == "" {
				return nil, fmt.Errorf("product_id is required")
			}
			product, err := d.Catalog.Product(ctx, in.ProductID)
			if errors.Is(err, catalog.ErrNotFound) {
				return &GetProductDetailsOutput{
					Status:  StatusNotFound,
					Message: fmt.Sprintf("No product with ID %s.", in.ProductID),
				}, nil
			}
			if err != nil {
				return nil, err
			}

			d.rememberProduct(ctx, product)

			// embeddings are internal, never shown to the model
			product.Embedding = nil
			return &GetProductDetailsOutput{Status: StatusSuccess, Product: &product}, nil
		},
	)
}

// rememberProduct marks a product as the conversation's most recently
// discussed one so follow-ups like "tell me more about it" resolve. Memory
// write failures are logged, never surfaced to the customer.
func (d *Deps) rememberProduct(ctx context.Context, product catalog.Product) {
	turn := d.turn(ctx)
	mem, err := d.Sessions.Load(ctx, turn.ConversationID)
	if err != nil && !errors.Is(err, session.ErrNotFound) {
		logx.Error().Err(err).Str("conversation_id", turn.ConversationID).Msg("failed to load product memory")
		return
	}

	mem.LastProductID = product.ID
	mem.LastProductName = product.Name
	if !containsString(mem.ProductIDs, product.ID) {
		mem.ProductIDs = append(mem.ProductIDs, product.ID)
	}
	if !containsString(mem.DetailedIDs, product.ID) {
		mem.DetailedIDs = append(mem.DetailedIDs, product.ID)
	}

	if err := d.Sessions.Save(ctx, turn.ConversationID, mem); err != nil {
		logx.Error().Err(err).Str("conversation_id", turn.ConversationID).Msg("failed to save product memory")
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

type GetLastProductOutput struct {
	Status    string `json:"status"`
	ProductID string `json:"product_id,omitempty"`
	Name      string `json:"name,omitempty"`
	LastQuery string `json:"last_query,omitempty"`
	Message   string `json:"message,omitempty"`
}

func newGetLastMentionedProductTool(d *Deps) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name:        ToolGetLastProduct,
			Desc:        "Get the product most recently discussed in this conversation. Use when the customer says 'it', 'that one', or 'tell me more' without naming a product.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{}),
		},
		func(ctx context.Context, _ *struct{}) (*GetLastProductOutput, error) {
			turn := d.turn(ctx)
			mem, err := d.Sessions.Load(ctx, turn.ConversationID)
			if errors.Is(err, session.ErrNotFound) || (err == nil && mem.LastProductID == "") {
				return &GetLastProductOutput{
					Status:  StatusNotFound,
					Message: "No product has been discussed in this conversation yet.",
				}, nil
			}
			if err != nil {
				return nil, err
			}
			return &GetLastProductOutput{
				Status:    StatusSuccess,
				ProductID: mem.LastProductID,
				Name:      mem.LastProductName,
				LastQuery: mem.LastQuery,
			}, nil
		},
	)
}

type GetAllSavedProductsOutput struct {
	Status   string            `json:"status"`
	Products []catalog.Product `json:"products,omitempty"`
	Total    int               `json:"total"`
	Message  string            `json:"message,omitempty"`
}

func newGetAllSavedProductsTool(d *Deps) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name:        ToolGetAllSavedProducts,
			Desc:        "Get full details for every product from the most recent search in this conversation. Use when the customer asks about 'all of them' or wants a comparison of the results.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{}),
		},
		func(ctx context.Context, _ *struct{}) (*GetAllSavedProductsOutput, error) {
			turn := d.turn(ctx)
			mem, err := d.Sessions.Load(ctx, turn.ConversationID)
			if errors.Is(err, session.ErrNotFound) || (err == nil && len(mem.ProductIDs) == 0) {
				return &GetAllSavedProductsOutput{
					Status:  StatusNotFound,
					Message: "No search results are saved for this conversation yet.",
				}, nil
			}
			if err != nil {
				return nil, err
			}

			products := make([]catalog.Product, 0, len(mem.ProductIDs))
			for _, id := range mem.ProductIDs {
				p, err := d.Catalog.Product(ctx, id)
				if errors.Is(err, catalog.ErrNotFound) {
					logx.Warn().Str("product_id", id).Msg("remembered product no longer in catalog")
					continue
				}
				if err != nil {
					return nil, err
				}
				p.Embedding = nil
				products = append(products, p)
				if !containsString(mem.DetailedIDs, id) {
					mem.DetailedIDs = append(mem.DetailedIDs, id)
				}
			}

			if err := d.Sessions.Save(ctx, turn.ConversationID, mem); err != nil {
				logx.Error().Err(err).Str("conversation_id", turn.ConversationID).Msg("failed to save product memory")
			}
			return &GetAllSavedProductsOutput{
				Status:   StatusSuccess,
				Products: products,
				Total:    len(products),
			}, nil
		},
	)
}

type CheckInventoryInput struct {
	ProductID string `json:"product_id"`
}

type CheckInventoryOutput struct {
	Status    string             `json:"status"`
	Inventory *catalog.Inventory `json:"inventory,omitempty"`
	Message   string             `json:"message,omitempty"`
}

func newCheckInventoryTool(d *Deps) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolCheckInventory,
			Desc: "Check current stock levels for a product, broken down by warehouse.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_id": {
					Type:     "string",
					Desc:     "Product ID to check stock for (e.g. PROD-001).",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *CheckInventoryInput) (*CheckInventoryOutput, error) {
			if in.ProductID == "" {
				return nil, fmt.Errorf("product_id is required")
			}
			inv, err := d.Catalog.Inventory(ctx, in.ProductID)
			if errors.Is(err, catalog.ErrNotFound) {
				return &CheckInventoryOutput{
					Status:  StatusNotFound,
					Message: fmt.Sprintf("No inventory record for product %s.", in.ProductID),
				}, nil
			}
			if err != nil {
				return nil, err
			}
			return &CheckInventoryOutput{Status: StatusSuccess, Inventory: &inv}, nil
		},
	)
}

type GetProductReviewsInput struct {
	ProductID string `json:"product_id"`
}

type GetProductReviewsOutput struct {
	Status  string                 `json:"status"`
	Reviews *catalog.ReviewSummary `json:"reviews,omitempty"`
	Message string                 `json:"message,omitempty"`
}

func newGetProductReviewsTool(d *Deps) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolGetProductReviews,
			Desc: "Get the customer review summary for a product: average rating, review count, and recent reviews.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_id": {
					Type:     "string",
					Desc:     "Product ID to fetch reviews for (e.g. PROD-001).",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *GetProductReviewsInput) (*GetProductReviewsOutput, error) {
			if in.ProductID == "" {
				return nil, fmt.Errorf("product_id is required")
			}
			reviews, err := d.Catalog.Reviews(ctx, in.ProductID)
			if errors.Is(err, catalog.ErrNotFound) {
				return &GetProductReviewsOutput{
					Status:  StatusNotFound,
					Message: fmt.Sprintf("No reviews for product %s yet.", in.ProductID),
				}, nil
			}
			if err != nil {
				return nil, err
			}
			return &GetProductReviewsOutput{Status: StatusSuccess, Reviews: &reviews}, nil
		},
	)
}
