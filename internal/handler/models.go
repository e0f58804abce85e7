package handler

import (
	"time"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/checkout"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/gateway"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/storefront"
	"github.com/shopspring/decimal"
)

// Product товар витрины
type Product struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" swaggertype:"string"`
	Category    string          `json:"category"`
	Featured    bool            `json:"featured"`
}

// Customer данные покупателя
type Customer struct {
	Name  string `json:"customerName"`
	Email string `json:"customerEmail"`
}

// Outcome результат платежной попытки
type Outcome struct {
	Kind      string `json:"kind"`
	PaymentID string `json:"paymentId,omitempty"`
	OrderID   string `json:"orderId,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// Notice уведомление для покупателя
type Notice struct {
	Level   string    `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Session снимок сессии оформления заказа
type Session struct {
	ID           string                        `json:"id"`
	Product      Product                       `json:"product"`
	Step         string                        `json:"step"`
	Customer     *Customer                     `json:"customer,omitempty"`
	Outcome      *Outcome                      `json:"outcome,omitempty"`
	Confirmation *storefront.OrderConfirmation `json:"confirmation,omitempty"`
	AttemptID    string                        `json:"attemptId,omitempty"`
	Submitting   bool                          `json:"submitting"`
	Shared       []string                      `json:"shared"`
	Notices      []Notice                      `json:"notices"`
}

type OpenSessionRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type DetailsRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
}

// PayResponse параметры для открытия платежного окна
type PayResponse struct {
	AttemptID   string          `json:"attemptId"`
	CheckoutURL string          `json:"checkoutUrl"`
	Options     gateway.Options `json:"options"`
	Session     Session         `json:"session"`
}

// ShareResponse ссылка для публикации в соцсети
type ShareResponse struct {
	ShareURL      string  `json:"shareUrl"`
	AlreadyShared bool    `json:"alreadyShared"`
	Session       Session `json:"session"`
}

type ContactRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Message       string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ContactResponse struct {
	Success bool `json:"success"`
}

// GatewayCallback отчет платежного окна об успешной оплате
type GatewayCallback struct {
	AttemptID string `json:"attemptId"`
	PaymentID string `json:"razorpay_payment_id"`
	OrderID   string `json:"razorpay_order_id"`
	Signature string `json:"razorpay_signature"`
}

type GatewayDismiss struct {
	AttemptID string `json:"attemptId"`
}

type GatewayFailure struct {
	AttemptID string `json:"attemptId"`
	Error     struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// Receipt запись журнала подтвержденных заказов
type Receipt struct {
	storefront.OrderConfirmation
	SessionID      string    `json:"sessionId"`
	CustomerName   string    `json:"customerName"`
	CustomerEmail  string    `json:"customerEmail"`
	PaymentID      string    `json:"paymentId,omitempty"`
	GatewayOrderID string    `json:"gatewayOrderId,omitempty"`
	RecordedAt     time.Time `json:"recordedAt"`
}

// Completion событие завершения оплаты из другого контекста
type Completion struct {
	SessionID string `json:"sessionId" validate:"required"`
	checkout.Signal
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    string(p.Category),
		Featured:    p.Featured,
	}
}

func SessionToJSON(s checkout.Snapshot) Session {
	res := Session{
		ID:         s.ID,
		Product:    ProductEntityToJSON(s.Product),
		Step:       string(s.Step),
		AttemptID:  s.AttemptID,
		Submitting: s.Submitting,
		Shared:     make([]string, 0, len(s.Shared)),
		Notices:    make([]Notice, 0, len(s.Notices)),
	}
	if !s.Customer.IsZero() {
		res.Customer = &Customer{Name: s.Customer.Name, Email: s.Customer.Email}
	}
	if s.Outcome != nil {
		res.Outcome = &Outcome{
			Kind:      s.Outcome.Kind.String(),
			PaymentID: s.Outcome.PaymentID,
			OrderID:   s.Outcome.OrderID,
			Reason:    s.Outcome.Reason,
		}
	}
	if s.Confirmation != nil {
		conf := storefront.ConfirmationFromEntity(*s.Confirmation)
		res.Confirmation = &conf
	}
	for _, p := range s.Shared {
		res.Shared = append(res.Shared, string(p))
	}
	for _, n := range s.Notices {
		res.Notices = append(res.Notices, Notice{Level: string(n.Level), Message: n.Message, At: n.At})
	}
	return res
}

func ReceiptEntityToJSON(r entities.Receipt) Receipt {
	return Receipt{
		OrderConfirmation: storefront.ConfirmationFromEntity(r.Confirmation),
		SessionID:         r.SessionID,
		CustomerName:      r.Customer.Name,
		CustomerEmail:     r.Customer.Email,
		PaymentID:         r.PaymentID,
		GatewayOrderID:    r.GatewayOrderID,
		RecordedAt:        r.RecordedAt,
	}
}
