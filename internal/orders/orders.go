package orders

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("orders: not found")
	// ErrRefundExists is returned when a refund was already created for an
	// order. Refund ids are a pure function of order ids, so a second
	// attempt for the same order is rejected rather than overwritten.
	ErrRefundExists = errors.New("orders: refund already exists")
)

// TimelineEvent is one entry in an order's shipping timeline.
type TimelineEvent struct {
	Date  string `json:"date"`
	Event string `json:"event"`
}

// Order is a customer order as tracked by support.
type Order struct {
	ID                string          `json:"id"`
	CustomerID        string          `json:"customer_id"`
	Date              string          `json:"date"`
	Status            string          `json:"status"`
	Carrier           string          `json:"carrier,omitempty"`
	TrackingNumber    string          `json:"tracking_number,omitempty"`
	EstimatedDelivery string          `json:"estimated_delivery,omitempty"`
	Total             float64         `json:"total"`
	Timeline          []TimelineEvent `json:"timeline,omitempty"`
}

// EligibilityRecord is the business-rule lookup for refund decisions,
// keyed by order id.
type EligibilityRecord struct {
	OrderID   string  `json:"order_id"`
	Eligible  bool    `json:"eligible"`
	Reason    string  `json:"reason"`
	MaxRefund float64 `json:"max_refund,omitempty"`
}

// Refund is a pending refund record. Its id derives deterministically from
// the order id.
type Refund struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	Reason  string `json:"reason"`
	Status  string `json:"status"`
}

// RefundIDFor derives the refund id for an order: the ORD- prefix becomes REF-.
func RefundIDFor(orderID string) string {
	return "REF-" + strings.TrimPrefix(orderID, "ORD-")
}

// Invoice is a billing document for an order.
type Invoice struct {
	ID      string  `json:"id"`
	OrderID string  `json:"order_id"`
	Date    string  `json:"date"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status"`
}

// Payment records the payment state of an order.
type Payment struct {
	OrderID string  `json:"order_id"`
	Method  string  `json:"method"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status"`
}

// Store is the order/eligibility/refund/billing boundary consumed by the
// refund pipeline and the order tools.
type Store interface {
	// OrderExists reports whether an order id is known.
	OrderExists(ctx context.Context, orderID string) (bool, error)

	// Order returns a single order, or ErrNotFound.
	Order(ctx context.Context, orderID string) (Order, error)

	// OrderHistory returns all orders for a customer, newest first.
	OrderHistory(ctx context.Context, customerID string) ([]Order, error)

	// Eligibility returns the refund eligibility record for an order,
	// or ErrNotFound when no record exists.
	Eligibility(ctx context.Context, orderID string) (EligibilityRecord, error)

	// CreateRefund persists a refund record. Returns ErrRefundExists when a
	// refund with the same id already exists.
	CreateRefund(ctx context.Context, refund Refund) error

	// Refund returns a refund record by id, or ErrNotFound.
	Refund(ctx context.Context, refundID string) (Refund, error)

	// Invoice returns an invoice by invoice id, or ErrNotFound.
	Invoice(ctx context.Context, invoiceID string) (Invoice, error)

	// InvoiceByOrder returns the invoice for an order, or ErrNotFound.
	InvoiceByOrder(ctx context.Context, orderID string) (Invoice, error)

	// Payment returns the payment status for an order, or ErrNotFound.
	Payment(ctx context.Context, orderID string) (Payment, error)
}
