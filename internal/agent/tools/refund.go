package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/storefront-support/server/internal/refund"
	logx "github.com/storefront-support/server/pkg/logger"
)

type ValidateOrderIDInput struct {
	OrderID string `json:"order_id"`
}

type ValidateOrderIDOutput struct {
	Status  string `json:"status"`
	OrderID string `json:"order_id"`
	Message string `json:"message,omitempty"`
}

func newValidateOrderIDTool(d *Deps) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolValidateOrderID,
			Desc: "Check whether an order ID exists before starting a refund. Returns status 'valid' or 'invalid'. This is step 1 of the refund process.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"order_id": {
					Type:     "string",
					Desc:     "Order ID to validate (e.g. ORD-12345).",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *ValidateOrderIDInput) (*ValidateOrderIDOutput, error) {
			if in.OrderID == "" {
				return nil, fmt.Errorf("order_id is required")
			}
			result, err := d.Pipeline.ValidateOrder(ctx, d.turn(ctx), in.OrderID)
			if err != nil {
				logx.Error().Err(err).Str("order_id", in.OrderID).Msg("order validation failed")
				return &ValidateOrderIDOutput{
					Status:  StatusError,
					OrderID: in.OrderID,
					Message: "Order validation is temporarily unavailable.",
				}, nil
			}
			out := &ValidateOrderIDOutput{Status: string(result.Status), OrderID: in.OrderID}
			if result.Status != refund.StatusValid {
				out.Message = fmt.Sprintf("Order %s was not found. Please double-check the order ID.", in.OrderID)
			}
			return out, nil
		},
	)
}

type CheckRefundEligibilityInput struct {
	OrderID string `json:"order_id"`
}

type CheckRefundEligibilityOutput struct {
	Status    string  `json:"status"`
	OrderID   string  `json:"order_id"`
	Eligible  bool    `json:"eligible"`
	Reason    string  `json:"reason,omitempty"`
	MaxRefund float64 `json:"max_refund,omitempty"`
	Message   string  `json:"message,omitempty"`
}

func newCheckRefundEligibilityTool(d *Deps) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolCheckRefundEligible,
			Desc: "Check whether a validated order is eligible for a refund and the maximum refundable amount. This is step 2 of the refund process; only call it after validate_order_id returned 'valid'.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"order_id": {
					Type:     "string",
					Desc:     "Validated order ID (e.g. ORD-12345).",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *CheckRefundEligibilityInput) (*CheckRefundEligibilityOutput, error) {
			if in.OrderID == "" {
				return nil, fmt.Errorf("order_id is required")
			}
			result, err := d.Pipeline.CheckEligibility(ctx, d.turn(ctx), in.OrderID)
			if err != nil {
				logx.Error().Err(err).Str("order_id", in.OrderID).Msg("eligibility check failed")
				return &CheckRefundEligibilityOutput{
					Status:  StatusError,
					OrderID: in.OrderID,
					Message: "Eligibility checks are temporarily unavailable.",
				}, nil
			}
			out := &CheckRefundEligibilityOutput{
				Status:    string(result.Status),
				OrderID:   in.OrderID,
				Eligible:  result.Eligible,
				Reason:    result.Reason,
				MaxRefund: result.MaxRefund,
			}
			if result.Status == refund.StatusNotFound {
				out.Message = fmt.Sprintf("No refund eligibility information exists for order %s.", in.OrderID)
			}
			return out, nil
		},
	)
}

type ProcessRefundInput struct {
	OrderID string `json:"order_id"`
	Reason  string `json:"reason,omitempty"`
}

type ProcessRefundOutput struct {
	Status   string `json:"status"`
	OrderID  string `json:"order_id"`
	RefundID string `json:"refund_id,omitempty"`
	Message  string `json:"message,omitempty"`
}

func newProcessRefundTool(d *Deps) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolProcessRefund,
			Desc: "Create the refund for an order that passed validation and eligibility. Requires a refund reason; returns status 'missing_reason' when the customer has not given one yet. This is step 3 of the refund process.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"order_id": {
					Type:     "string",
					Desc:     "Eligible order ID (e.g. ORD-12345).",
					Required: true,
				},
				"reason": {
					Type: "string",
					Desc: "The customer's reason for the refund, in their own words.",
				},
			}),
		},
		func(ctx context.Context, in *ProcessRefundInput) (*ProcessRefundOutput, error) {
			if in.OrderID == "" {
				return nil, fmt.Errorf("order_id is required")
			}
			result, err := d.Pipeline.ProcessRefund(ctx, d.turn(ctx), in.OrderID, in.Reason)
			if err != nil {
				logx.Error().Err(err).Str("order_id", in.OrderID).Msg("refund processing failed")
				return &ProcessRefundOutput{
					Status:  StatusError,
					OrderID: in.OrderID,
					Message: "Refund processing is temporarily unavailable.",
				}, nil
			}
			return &ProcessRefundOutput{
				Status:   string(result.Status),
				OrderID:  in.OrderID,
				RefundID: result.RefundID,
				Message:  result.Message,
			}, nil
		},
	)
}

type RequestRefundInput struct {
	OrderID string `json:"order_id"`
	Reason  string `json:"reason,omitempty"`
}

type RequestRefundOutput struct {
	Status      string `json:"status"`
	State       string `json:"state"`
	OrderID     string `json:"order_id"`
	RefundID    string `json:"refund_id,omitempty"`
	OrderGate   string `json:"order_gate"`
	Eligibility string `json:"eligibility_gate"`
	Message     string `json:"message"`
}

func newRequestRefundTool(d *Deps) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolRequestRefund,
			Desc: "Run the complete refund workflow for an order in one call: validate the order, check eligibility, then create the refund. Prefer this over calling the three step tools separately. If no reason is given and the order qualifies, the workflow pauses and asks for one.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"order_id": {
					Type:     "string",
					Desc:     "Order ID to refund (e.g. ORD-12345).",
					Required: true,
				},
				"reason": {
					Type: "string",
					Desc: "The customer's reason for the refund. Omit if the customer has not stated one; the workflow will ask.",
				},
			}),
		},
		func(ctx context.Context, in *RequestRefundInput) (*RequestRefundOutput, error) {
			if in.OrderID == "" {
				return nil, fmt.Errorf("order_id is required")
			}
			outcome, err := d.Pipeline.Run(ctx, d.turn(ctx), in.OrderID, in.Reason)
			if err != nil {
				logx.Error().Err(err).Str("order_id", in.OrderID).Msg("refund workflow failed")
				return &RequestRefundOutput{
					Status:  StatusError,
					State:   outcome.State.String(),
					OrderID: in.OrderID,
					Message: "The refund workflow is temporarily unavailable.",
				}, nil
			}

			status := StatusError
			switch outcome.State {
			case refund.StateRefundProcessed:
				status = StatusSuccess
			case refund.StateAwaitingReason:
				status = string(refund.StatusMissingReason)
			}
			return &RequestRefundOutput{
				Status:      status,
				State:       outcome.State.String(),
				OrderID:     in.OrderID,
				RefundID:    outcome.RefundID,
				OrderGate:   outcome.Gate.Order.String(),
				Eligibility: outcome.Gate.Eligibility.String(),
				Message:     outcome.Message,
			}, nil
		},
	)
}
