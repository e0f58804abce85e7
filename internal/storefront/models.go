package storefront

import (
	"time"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Featured    bool            `json:"featured,omitempty"`
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    entities.Category(p.Category),
		Featured:    p.Featured,
	}
}

type createOrderRequest struct {
	ProductID     string  `json:"productId"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	Amount        float64 `json:"amount"`
}

type gatewayOrder struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency,omitempty"`
}

// createOrderResponse accepts both the bare order and the {"data": order} envelope.
type createOrderResponse struct {
	gatewayOrder
	Data *gatewayOrder `json:"data,omitempty"`
}

func (r createOrderResponse) order() gatewayOrder {
	if r.Data != nil && r.Data.ID != "" {
		return *r.Data
	}
	return r.gatewayOrder
}

type validateRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	Signature string `json:"razorpay_signature"`
	PaymentID string `json:"razorpay_payment_id"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type paymentDetails struct {
	PaymentID string `json:"razorpay_payment_id"`
	OrderID   string `json:"razorpay_order_id"`
}

type confirmRequest struct {
	CustomerName   string         `json:"customerName"`
	CustomerEmail  string         `json:"customerEmail"`
	ProductID      string         `json:"productId"`
	PaymentDetails paymentDetails `json:"paymentDetails"`
}

type ShareRecord struct {
	Platform string    `json:"platform"`
	SharedAt time.Time `json:"sharedAt"`
}

// OrderConfirmation is the wire shape of a confirmed order. The same shape is
// carried by mailbox signals and completion events.
type OrderConfirmation struct {
	OrderNumber    string          `json:"orderNumber"`
	Product        string          `json:"product,omitempty"`
	ProductID      string          `json:"productId,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status,omitempty"`
	PaymentStatus  string          `json:"paymentStatus,omitempty"`
	SharedOnSocial bool            `json:"sharedOnSocial,omitempty"`
	SocialShares   []ShareRecord   `json:"socialShares,omitempty"`
	CreatedAt      time.Time       `json:"createdAt,omitzero"`
}

// confirmResponse tolerates the order being nested under "order".
type confirmResponse struct {
	OrderConfirmation
	Order *OrderConfirmation `json:"order,omitempty"`
}

func (r confirmResponse) confirmation() OrderConfirmation {
	if r.OrderNumber == "" && r.Order != nil {
		return *r.Order
	}
	return r.OrderConfirmation
}

func ConfirmationToEntity(c OrderConfirmation) entities.OrderConfirmation {
	shares := make([]entities.ShareRecord, 0, len(c.SocialShares))
	for _, s := range c.SocialShares {
		shares = append(shares, entities.ShareRecord{Platform: s.Platform, SharedAt: s.SharedAt})
	}

	status := entities.OrderStatus(c.Status)
	if status == "" {
		status = entities.OrderConfirmed
	}
	paymentStatus := entities.PaymentStatus(c.PaymentStatus)
	if paymentStatus == "" {
		paymentStatus = entities.PaymentPaid
	}

	return entities.OrderConfirmation{
		OrderNumber:    c.OrderNumber,
		Product:        c.Product,
		ProductID:      c.ProductID,
		Amount:         c.Amount,
		Status:         status,
		PaymentStatus:  paymentStatus,
		SharedOnSocial: c.SharedOnSocial,
		SocialShares:   shares,
		CreatedAt:      c.CreatedAt,
	}
}

func ConfirmationFromEntity(c entities.OrderConfirmation) OrderConfirmation {
	shares := make([]ShareRecord, 0, len(c.SocialShares))
	for _, s := range c.SocialShares {
		shares = append(shares, ShareRecord{Platform: s.Platform, SharedAt: s.SharedAt})
	}
	return OrderConfirmation{
		OrderNumber:    c.OrderNumber,
		Product:        c.Product,
		ProductID:      c.ProductID,
		Amount:         c.Amount,
		Status:         string(c.Status),
		PaymentStatus:  string(c.PaymentStatus),
		SharedOnSocial: c.SharedOnSocial,
		SocialShares:   shares,
		CreatedAt:      c.CreatedAt,
	}
}

type shareRequest struct {
	OrderNumber string `json:"orderNumber"`
	Platform    string `json:"platform"`
}

type shareResponse struct {
	ShareURL string `json:"shareUrl"`
}

type contactRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Message       string `json:"message"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
