package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type ShareRecord struct {
	Platform string
	SharedAt time.Time
}

// OrderConfirmation is owned by the order API; the checkout holds a read-only copy.
type OrderConfirmation struct {
	OrderNumber    string
	Product        string
	ProductID      string
	Amount         decimal.Decimal
	Status         OrderStatus
	PaymentStatus  PaymentStatus
	SharedOnSocial bool
	SocialShares   []ShareRecord
	CreatedAt      time.Time
}

// Receipt is the locally journalled copy of a confirmed checkout.
type Receipt struct {
	Confirmation   OrderConfirmation
	SessionID      string
	Customer       CustomerDetails
	PaymentID      string
	GatewayOrderID string
	RecordedAt     time.Time
}
