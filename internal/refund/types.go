package refund

// OrderStatus is the gate written by the order validation stage.
type OrderStatus int

const (
	OrderUnchecked OrderStatus = iota
	OrderValid
	OrderInvalid
)

func (s OrderStatus) String() string {
	switch s {
	case OrderValid:
		return "valid"
	case OrderInvalid:
		return "invalid"
	default:
		return "unchecked"
	}
}

// EligibilityStatus is the gate written by the eligibility check stage.
type EligibilityStatus int

const (
	EligibilityUnchecked EligibilityStatus = iota
	Eligible
	Ineligible
	// EligibilityOrderNotFound marks the defensive case where the stage ran
	// without a validated order.
	EligibilityOrderNotFound
	// EligibilityNoData marks a missing eligibility record for the order.
	EligibilityNoData
)

func (s EligibilityStatus) String() string {
	switch s {
	case Eligible:
		return "eligible"
	case Ineligible:
		return "ineligible"
	case EligibilityOrderNotFound:
		return "order_not_found"
	case EligibilityNoData:
		return "no_eligibility_data"
	default:
		return "unchecked"
	}
}

// GateState carries stage outcomes through the pipeline. Each flag is written
// exactly once by its stage and read by the next; a set abort flag stops all
// downstream stages.
type GateState struct {
	Order       OrderStatus
	Eligibility EligibilityStatus
	Aborted     bool
}

// State enumerates the pipeline's machine states. The happy path walks
// StateStart through StateRefundProcessed; the abort states are terminal.
// StateAwaitingReason is a suspension, not a failure: the pipeline pauses for
// the caller to supply the missing refund reason.
type State int

const (
	StateStart State = iota
	StateOrderValidated
	StateEligibilityChecked
	StateAwaitingReason
	StateRefundProcessed
	StateAbortInvalidOrder
	StateAbortIneligible
	StateAbortDuplicateRefund
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateOrderValidated:
		return "order_validated"
	case StateEligibilityChecked:
		return "eligibility_checked"
	case StateAwaitingReason:
		return "awaiting_reason"
	case StateRefundProcessed:
		return "refund_processed"
	case StateAbortInvalidOrder:
		return "abort_invalid_order"
	case StateAbortIneligible:
		return "abort_ineligible"
	case StateAbortDuplicateRefund:
		return "abort_duplicate_refund"
	default:
		return "unknown"
	}
}

// Status is the structured outcome channel crossing the tool boundary.
// Stages never signal expected business outcomes through errors.
type Status string

const (
	StatusValid         Status = "valid"
	StatusInvalid       Status = "invalid"
	StatusSuccess       Status = "success"
	StatusNotFound      Status = "not_found"
	StatusError         Status = "error"
	StatusMissingReason Status = "missing_reason"
)

// ValidationResult is the stage-1 output.
type ValidationResult struct {
	Status Status `json:"status"`
}

// EligibilityResult is the stage-2 output.
type EligibilityResult struct {
	Status    Status  `json:"status"`
	Eligible  bool    `json:"eligible,omitempty"`
	Reason    string  `json:"reason,omitempty"`
	MaxRefund float64 `json:"max_refund,omitempty"`
}

// RefundResult is the stage-3 output.
type RefundResult struct {
	Status   Status `json:"status"`
	RefundID string `json:"refund_id,omitempty"`
	Message  string `json:"message,omitempty"`
}

// Outcome is the final result of a full pipeline run. Message is always set,
// so the conversation never ends without a response.
type Outcome struct {
	State    State
	Gate     GateState
	RefundID string
	Message  string
}
