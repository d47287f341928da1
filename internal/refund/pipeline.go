package refund

import (
	"context"
	"errors"
	"fmt"

	"github.com/storefront-support/server/internal/orders"
	"github.com/storefront-support/server/internal/session"
	logx "github.com/storefront-support/server/pkg/logger"
)

// Pipeline is the three-stage gated refund workflow: validate the order,
// check eligibility, process the refund. A failing stage aborts everything
// downstream; there are no retries and no partial refunds. Only
// infrastructure failures surface as errors, business outcomes travel in
// statuses and gate flags.
type Pipeline struct {
	store orders.Store
}

func NewPipeline(store orders.Store) *Pipeline {
	return &Pipeline{store: store}
}

// ValidateOrder is stage 1: confirm the order id exists.
func (p *Pipeline) ValidateOrder(ctx context.Context, turn session.TurnContext, orderID string) (ValidationResult, error) {
	exists, err := p.store.OrderExists(ctx, orderID)
	if err != nil {
		return ValidationResult{}, fmt.Errorf("validate order %s: %w", orderID, err)
	}

	result := ValidationResult{Status: StatusInvalid}
	if exists {
		result.Status = StatusValid
	}
	logx.Debug().
		Str("conversation_id", turn.ConversationID).
		Str("order_id", orderID).
		Str("order_status", string(result.Status)).
		Msg("refund stage 1: order validation")
	return result, nil
}

// CheckEligibility is stage 2: apply the business-rule lookup. Reachable only
// after a successful validation.
func (p *Pipeline) CheckEligibility(ctx context.Context, turn session.TurnContext, orderID string) (EligibilityResult, error) {
	rec, err := p.store.Eligibility(ctx, orderID)
	if errors.Is(err, orders.ErrNotFound) {
		logx.Warn().
			Str("conversation_id", turn.ConversationID).
			Str("order_id", orderID).
			Msg("refund stage 2: no eligibility record")
		return EligibilityResult{Status: StatusNotFound}, nil
	}
	if err != nil {
		return EligibilityResult{}, fmt.Errorf("check eligibility %s: %w", orderID, err)
	}

	logx.Debug().
		Str("conversation_id", turn.ConversationID).
		Str("order_id", orderID).
		Bool("eligible", rec.Eligible).
		Str("reason", rec.Reason).
		Msg("refund stage 2: eligibility check")
	return EligibilityResult{
		Status:    StatusSuccess,
		Eligible:  rec.Eligible,
		Reason:    rec.Reason,
		MaxRefund: rec.MaxRefund,
	}, nil
}

// ProcessRefund is stage 3: create the refund record. Reachable only after
// both gates pass. A missing reason suspends the stage rather than failing
// it. The order's existence is re-checked defensively before the write.
func (p *Pipeline) ProcessRefund(ctx context.Context, turn session.TurnContext, orderID, reason string) (RefundResult, error) {
	if reason == "" {
		return RefundResult{
			Status:  StatusMissingReason,
			Message: "A refund reason is required. Please ask the customer why they want the refund.",
		}, nil
	}

	exists, err := p.store.OrderExists(ctx, orderID)
	if err != nil {
		return RefundResult{}, fmt.Errorf("process refund %s: %w", orderID, err)
	}
	if !exists {
		logx.Error().
			Str("conversation_id", turn.ConversationID).
			Str("order_id", orderID).
			Msg("refund stage 3: order vanished after validation")
		return RefundResult{Status: StatusError, Message: "Order not found"}, nil
	}

	refund := orders.Refund{
		ID:      orders.RefundIDFor(orderID),
		OrderID: orderID,
		Reason:  reason,
		Status:  "pending",
	}
	if err := p.store.CreateRefund(ctx, refund); err != nil {
		if errors.Is(err, orders.ErrRefundExists) {
			logx.Warn().
				Str("conversation_id", turn.ConversationID).
				Str("refund_id", refund.ID).
				Msg("refund stage 3: duplicate refund attempt rejected")
			return RefundResult{
				Status:   StatusError,
				RefundID: refund.ID,
				Message:  fmt.Sprintf("A refund for order %s has already been submitted.", orderID),
			}, nil
		}
		return RefundResult{}, fmt.Errorf("create refund %s: %w", refund.ID, err)
	}

	logx.Info().
		Str("conversation_id", turn.ConversationID).
		Str("order_id", orderID).
		Str("refund_id", refund.ID).
		Msg("refund created")
	return RefundResult{Status: StatusSuccess, RefundID: refund.ID, Message: "Refund submitted"}, nil
}

// Run executes the full workflow. The returned Outcome always carries a
// user-facing message, one per abort reason, so the caller is never left
// without a response.
func (p *Pipeline) Run(ctx context.Context, turn session.TurnContext, orderID, reason string) (Outcome, error) {
	out := Outcome{State: StateStart}

	validation, err := p.ValidateOrder(ctx, turn, orderID)
	if err != nil {
		return out, err
	}
	if validation.Status != StatusValid {
		out.Gate = GateState{Order: OrderInvalid, Aborted: true}
		out.State = StateAbortInvalidOrder
		out.Message = fmt.Sprintf("Order %s was not found. Please double-check the order ID.", orderID)
		return out, nil
	}
	out.Gate.Order = OrderValid
	out.State = StateOrderValidated

	eligibility, err := p.CheckEligibility(ctx, turn, orderID)
	if err != nil {
		return out, err
	}
	switch {
	case eligibility.Status == StatusNotFound:
		out.Gate.Eligibility = EligibilityNoData
		out.Gate.Aborted = true
		out.State = StateAbortIneligible
		out.Message = fmt.Sprintf("We couldn't find refund eligibility information for order %s. Please contact support directly.", orderID)
		return out, nil
	case !eligibility.Eligible:
		out.Gate.Eligibility = Ineligible
		out.Gate.Aborted = true
		out.State = StateAbortIneligible
		out.Message = fmt.Sprintf("Order %s is not eligible for a refund: %s", orderID, eligibility.Reason)
		return out, nil
	}
	out.Gate.Eligibility = Eligible
	out.State = StateEligibilityChecked

	if reason == "" {
		out.State = StateAwaitingReason
		out.Message = "Please provide a reason for the refund so we can process it."
		return out, nil
	}

	result, err := p.ProcessRefund(ctx, turn, orderID, reason)
	if err != nil {
		return out, err
	}
	switch result.Status {
	case StatusSuccess:
		out.State = StateRefundProcessed
		out.RefundID = result.RefundID
		out.Message = fmt.Sprintf("Refund %s submitted for order %s. It will be reviewed within 3-5 business days.", result.RefundID, orderID)
	case StatusMissingReason:
		out.State = StateAwaitingReason
		out.Message = result.Message
	default:
		out.Gate.Aborted = true
		// StatusError with a refund id means the duplicate guard fired;
		// without one the order disappeared between stages.
		if result.RefundID != "" {
			out.State = StateAbortDuplicateRefund
		} else {
			out.State = StateAbortInvalidOrder
		}
		out.Message = result.Message
	}
	return out, nil
}
