package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeConfirmed = "checkout.confirmed"
	TypeShared    = "checkout.shared"

	aggregateType = "order"
	source        = "checkout-service"
)

// Event is the envelope every lifecycle message is wrapped in.
type Event struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	AggregateID   string          `json:"aggregate_id"`
	AggregateType string          `json:"aggregate_type"`
	Version       int             `json:"version"`
	Timestamp     time.Time       `json:"timestamp"`
	Source        string          `json:"source"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Data          json.RawMessage `json:"data"`
}

func newEvent(eventType, aggregateID string, at time.Time, data any) (*Event, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &Event{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		AggregateID:   aggregateID,
		AggregateType: aggregateType,
		Version:       1,
		Timestamp:     at.UTC(),
		Source:        source,
		Data:          raw,
	}, nil
}

func (e *Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

func Unmarshal(data []byte) (*Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (e *Event) UnmarshalData(target any) error {
	return json.Unmarshal(e.Data, target)
}

type ConfirmedData struct {
	OrderNumber    string          `json:"orderNumber"`
	SessionID      string          `json:"sessionId"`
	ProductID      string          `json:"productId"`
	Product        string          `json:"product,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentID      string          `json:"paymentId,omitempty"`
	GatewayOrderID string          `json:"gatewayOrderId,omitempty"`
	CustomerName   string          `json:"customerName,omitempty"`
	ConfirmedAt    time.Time       `json:"confirmedAt"`
}

type SharedData struct {
	OrderNumber string    `json:"orderNumber"`
	Platform    string    `json:"platform"`
	SharedAt    time.Time `json:"sharedAt"`
}
