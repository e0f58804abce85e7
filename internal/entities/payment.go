package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota + 1
	OutcomeFailure
	OutcomeCancelled
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

const (
	ReasonScriptUnavailable   = "gateway script unavailable"
	ReasonIncompleteResponse  = "incomplete payment response"
	ReasonVerificationFailed  = "payment verification failed"
	ReasonOrderCreationFailed = "failed to create payment order"
	ReasonPaymentFailed       = "payment failed"
)

// PaymentOutcome is produced exactly once per payment attempt.
// Only the fields matching Kind are meaningful.
type PaymentOutcome struct {
	Kind OutcomeKind

	PaymentID string
	OrderID   string
	Signature string

	Reason string
}

func Succeeded(paymentID, orderID, signature string) PaymentOutcome {
	return PaymentOutcome{
		Kind:      OutcomeSuccess,
		PaymentID: paymentID,
		OrderID:   orderID,
		Signature: signature,
	}
}

func Failed(reason string) PaymentOutcome {
	if strings.TrimSpace(reason) == "" {
		reason = ReasonPaymentFailed
	}
	return PaymentOutcome{Kind: OutcomeFailure, Reason: reason}
}

func Cancelled() PaymentOutcome {
	return PaymentOutcome{Kind: OutcomeCancelled, Reason: "payment was cancelled"}
}

func (o PaymentOutcome) IsSuccess() bool {
	return o.Kind == OutcomeSuccess
}

// Complete reports whether a success payload carries every field the
// confirmation step needs.
func (o PaymentOutcome) Complete() bool {
	return o.PaymentID != "" && o.OrderID != "" && o.Signature != ""
}

// GatewayOrder is the pending order the storefront API creates before the
// hosted payment UI is opened.
type GatewayOrder struct {
	ID       string
	Amount   decimal.Decimal
	Currency string
}
