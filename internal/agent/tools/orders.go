package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/storefront-support/server/internal/orders"
)

type TrackOrderInput struct {
	OrderID string `json:"order_id"`
}

type TrackOrderOutput struct {
	Status  string        `json:"status"`
	Order   *orders.Order `json:"order,omitempty"`
	Message string        `json:"message,omitempty"`
}

func newTrackOrderTool(d *Deps) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolTrackOrder,
			Desc: "Track an order: current status, carrier, tracking number, estimated delivery, and the shipping timeline.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"order_id": {
					Type:     "string",
					Desc:     "Order ID to track (e.g. ORD-12345).",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *TrackOrderInput) (*TrackOrderOutput, error) {
			if in.OrderID == "" {
				return nil, fmt.Errorf("order_id is required")
			}
			order, err := d.Orders.Order(ctx, in.OrderID)
			if errors.Is(err, orders.ErrNotFound) {
				return &TrackOrderOutput{
					Status:  StatusNotFound,
					Message: fmt.Sprintf("Order %s was not found. Please double-check the order ID.", in.OrderID),
				}, nil
			}
			if err != nil {
				return nil, err
			}
			return &TrackOrderOutput{Status: StatusSuccess, Order: &order}, nil
		},
	)
}

type GetOrderHistoryInput struct {
	CustomerID string `json:"customer_id,omitempty"`
}

type GetOrderHistoryOutput struct {
	Status  string         `json:"status"`
	Orders  []orders.Order `json:"orders,omitempty"`
	Total   int            `json:"total"`
	Message string         `json:"message,omitempty"`
}

func newGetOrderHistoryTool(d *Deps) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolGetOrderHistory,
			Desc: "List a customer's past orders, newest first. Defaults to the customer in this conversation.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"customer_id": {
					Type: "string",
					Desc: "Optional customer ID. Omit to use the current customer.",
				},
			}),
		},
		func(ctx context.Context, in *GetOrderHistoryInput) (*GetOrderHistoryOutput, error) {
			customerID := in.CustomerID
			if customerID == "" {
				customerID = d.turn(ctx).UserID
			}
			history, err := d.Orders.OrderHistory(ctx, customerID)
			if err != nil {
				return nil, err
			}
			if len(history) == 0 {
				return &GetOrderHistoryOutput{
					Status:  StatusNoResults,
					Message: fmt.Sprintf("No orders found for customer %s.", customerID),
				}, nil
			}
			return &GetOrderHistoryOutput{Status: StatusSuccess, Orders: history, Total: len(history)}, nil
		},
	)
}

type GetInvoiceInput struct {
	InvoiceID string `json:"invoice_id,omitempty"`
	OrderID   string `json:"order_id,omitempty"`
}

type GetInvoiceOutput struct {
	Status  string          `json:"status"`
	Invoice *orders.Invoice `json:"invoice,omitempty"`
	Message string          `json:"message,omitempty"`
}

func newGetInvoiceTool(d *Deps) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolGetInvoice,
			Desc: "Fetch an invoice by invoice ID or by the order it belongs to. Provide exactly one of the two IDs.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"invoice_id": {
					Type: "string",
					Desc: "Invoice ID (e.g. INV-2025-001).",
				},
				"order_id": {
					Type: "string",
					Desc: "Order ID to look the invoice up by (e.g. ORD-12345).",
				},
			}),
		},
		func(ctx context.Context, in *GetInvoiceInput) (*GetInvoiceOutput, error) {
			if in.InvoiceID == "" && in.OrderID == "" {
				return nil, fmt.Errorf("either invoice_id or order_id is required")
			}

			var (
				invoice orders.Invoice
				err     error
			)
			if in.InvoiceID != "" {
				invoice, err = d.Orders.Invoice(ctx, in.InvoiceID)
			} else {
				invoice, err = d.Orders.InvoiceByOrder(ctx, in.OrderID)
			}
			if errors.Is(err, orders.ErrNotFound) {
				return &GetInvoiceOutput{
					Status:  StatusNotFound,
					Message: "No matching invoice was found.",
				}, nil
			}
			if err != nil {
				return nil, err
			}
			return &GetInvoiceOutput{Status: StatusSuccess, Invoice: &invoice}, nil
		},
	)
}

type CheckPaymentStatusInput struct {
	OrderID string `json:"order_id"`
}

type CheckPaymentStatusOutput struct {
	Status  string          `json:"status"`
	Payment *orders.Payment `json:"payment,omitempty"`
	Message string          `json:"message,omitempty"`
}

func newCheckPaymentStatusTool(d *Deps) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolCheckPaymentStatus,
			Desc: "Check the payment status of an order: method, amount, and whether it completed.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"order_id": {
					Type:     "string",
					Desc:     "Order ID to check payment for (e.g. ORD-12345).",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *CheckPaymentStatusInput) (*CheckPaymentStatusOutput, error) {
			if in.OrderID == "" {
				return nil, fmt.Errorf("order_id is required")
			}
			payment, err := d.Orders.Payment(ctx, in.OrderID)
			if errors.Is(err, orders.ErrNotFound) {
				return &CheckPaymentStatusOutput{
					Status:  StatusNotFound,
					Message: fmt.Sprintf("No payment record for order %s.", in.OrderID),
				}, nil
			}
			if err != nil {
				return nil, err
			}
			return &CheckPaymentStatusOutput{Status: StatusSuccess, Payment: &payment}, nil
		},
	)
}
