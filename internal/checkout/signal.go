package checkout

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/storefront"
)

var errMalformedSignal = errors.New("malformed order signal")

// Signal is an order payload delivered through the session mailbox by a
// context that cannot reach the session directly.
type Signal struct {
	storefront.OrderConfirmation
	AttemptID string `json:"attemptId,omitempty"`
}

func NewSignal(conf entities.OrderConfirmation, attemptID string) Signal {
	return Signal{
		OrderConfirmation: storefront.ConfirmationFromEntity(conf),
		AttemptID:         attemptID,
	}
}

func (s Signal) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

// ParseSignal accepts a payload that decodes and names an order.
func ParseSignal(data []byte) (Signal, error) {
	var sig Signal
	if err := json.Unmarshal(data, &sig); err != nil {
		return Signal{}, fmt.Errorf("%w: %w", errMalformedSignal, err)
	}
	if sig.OrderNumber == "" {
		return Signal{}, fmt.Errorf("%w: missing order number", errMalformedSignal)
	}
	return sig, nil
}

func (s Signal) Confirmation() entities.OrderConfirmation {
	return storefront.ConfirmationToEntity(s.OrderConfirmation)
}
