package orders

import "context"

// Writer is the seeding side of an order store.
type Writer interface {
	PutOrder(ctx context.Context, o Order) error
	PutEligibility(ctx context.Context, rec EligibilityRecord) error
	PutInvoice(ctx context.Context, inv Invoice) error
	PutPayment(ctx context.Context, p Payment) error
}

// Seed loads the demo orders, eligibility records and billing documents.
func Seed(ctx context.Context, w Writer) error {
	for _, o := range sampleOrders {
		if err := w.PutOrder(ctx, o); err != nil {
			return err
		}
	}
	for _, rec := range SampleEligibility() {
		if err := w.PutEligibility(ctx, rec); err != nil {
			return err
		}
	}
	for _, inv := range sampleInvoices {
		if err := w.PutInvoice(ctx, inv); err != nil {
			return err
		}
	}
	for _, p := range samplePayments {
		if err := w.PutPayment(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

var sampleOrders = []Order{
	{
		ID: "ORD-12345", CustomerID: "CUST-001", Date: "2025-01-15", Status: "In Transit",
		Carrier: "FastShip", TrackingNumber: "FS789456123", EstimatedDelivery: "2025-01-20",
		Total: 1295.98,
		Timeline: []TimelineEvent{
			{Date: "2025-01-15", Event: "Order placed"},
			{Date: "2025-01-16", Event: "Processing complete"},
			{Date: "2025-01-17", Event: "Shipped"},
			{Date: "2025-01-18", Event: "In transit"},
		},
	},
	{
		ID: "ORD-67890", CustomerID: "CUST-001", Date: "2025-01-10", Status: "Delivered",
		Carrier: "QuickPost", TrackingNumber: "QP456789012",
		Total: 215.99,
		Timeline: []TimelineEvent{
			{Date: "2025-01-10", Event: "Order placed"},
			{Date: "2025-01-11", Event: "Shipped"},
			{Date: "2025-01-14", Event: "Delivered"},
		},
	},
	{
		ID: "ORD-11111", CustomerID: "CUST-002", Date: "2024-11-20", Status: "Delivered",
		Carrier: "QuickPost", TrackingNumber: "QP111222333",
		Total: 449.99,
		Timeline: []TimelineEvent{
			{Date: "2024-11-20", Event: "Order placed"},
			{Date: "2024-11-22", Event: "Shipped"},
			{Date: "2024-11-25", Event: "Delivered"},
		},
	},
	{
		ID: "ORD-22222", CustomerID: "CUST-002", Date: "2025-01-18", Status: "Processing",
		Total: 647.99,
		Timeline: []TimelineEvent{
			{Date: "2025-01-18", Event: "Order placed"},
		},
	},
}

// SampleEligibility returns the demo refund eligibility records.
func SampleEligibility() []EligibilityRecord {
	return []EligibilityRecord{
		{OrderID: "ORD-12345", Eligible: true, Reason: "Within 30-day return window", MaxRefund: 1295.98},
		{OrderID: "ORD-67890", Eligible: true, Reason: "Within 30-day return window", MaxRefund: 215.99},
		{OrderID: "ORD-11111", Eligible: false, Reason: "Past 30-day return window"},
		{OrderID: "ORD-22222", Eligible: true, Reason: "Order not yet shipped - can cancel", MaxRefund: 647.99},
	}
}

var sampleInvoices = []Invoice{
	{ID: "INV-2025-001", OrderID: "ORD-12345", Date: "2025-01-15", Amount: 1295.98, Status: "paid"},
	{ID: "INV-2025-002", OrderID: "ORD-67890", Date: "2025-01-10", Amount: 215.99, Status: "paid"},
}

var samplePayments = []Payment{
	{OrderID: "ORD-12345", Method: "credit_card", Amount: 1295.98, Status: "captured"},
	{OrderID: "ORD-67890", Method: "credit_card", Amount: 215.99, Status: "captured"},
	{OrderID: "ORD-22222", Method: "paypal", Amount: 647.99, Status: "authorized"},
}
