package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/storefront-support/server/internal/search"
	logx "github.com/storefront-support/server/pkg/logger"
)

type SearchProductsInput struct {
	Query    string  `json:"query"`
	MaxPrice float64 `json:"max_price,omitempty"`
	Limit    int     `json:"limit,omitempty"`
}

type SearchProductsOutput struct {
	Status   string             `json:"status"`
	Method   string             `json:"method,omitempty"`
	Products []search.Candidate `json:"products,omitempty"`
	Total    int                `json:"total"`
	Message  string             `json:"message,omitempty"`
}

func newSearchProductsTool(d *Deps) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolSearchProducts,
			Desc: "Search the product catalog by meaning, not just keywords. Understands natural language like 'something for gaming' or 'laptops under $600' and applies category and price constraints from the query. Use this whenever the customer describes or asks about products.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"query": {
					Type:     "string",
					Desc:     "The customer's product request in natural language, e.g. 'wireless headphones', 'a laptop for school under $600'.",
					Required: true,
				},
				"max_price": {
					Type: "number",
					Desc: "Optional price ceiling in USD. Leave unset to let the search extract it from the query text.",
				},
				"limit": {
					Type: "number",
					Desc: "Maximum number of products to return (default: 5).",
				},
			}),
		},
		func(ctx context.Context, in *SearchProductsInput) (*SearchProductsOutput, error) {
			if in.Query == "" {
				return nil, fmt.Errorf("query is required")
			}
			turn := d.turn(ctx)

			method := "semantic"
			results, err := d.Engine.Search(ctx, turn, in.Query, in.Limit, in.MaxPrice)
			if err != nil {
				logx.Error().Err(err).Str("query", in.Query).Msg("product search failed")
				return &SearchProductsOutput{Status: StatusError, Message: "Product search is temporarily unavailable."}, nil
			}

			// The semantic path degrades to empty on provider trouble; keyword
			// matching still gives the customer something to work with.
			if len(results) == 0 {
				method = "keyword"
				results, err = d.Engine.KeywordSearch(ctx, turn, in.Query, in.Limit)
				if err != nil {
					logx.Error().Err(err).Str("query", in.Query).Msg("keyword fallback failed")
					return &SearchProductsOutput{Status: StatusError, Message: "Product search is temporarily unavailable."}, nil
				}
			}

			if len(results) == 0 {
				return &SearchProductsOutput{
					Status:  StatusNoResults,
					Method:  method,
					Message: fmt.Sprintf("No products matched %q.", in.Query),
				}, nil
			}
			return &SearchProductsOutput{
				Status:   StatusSuccess,
				Method:   method,
				Products: results,
				Total:    len(results),
			}, nil
		},
	)
}
