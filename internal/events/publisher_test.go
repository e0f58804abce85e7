package events_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/events"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	mu   sync.Mutex
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func newPublisher(w *recordingWriter) *events.Publisher {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return events.NewPublisher(logger, w, "checkout-events")
}

func TestPublisher_PublishConfirmed(t *testing.T) {
	w := &recordingWriter{}
	p := newPublisher(w)

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	receipt := entities.Receipt{
		Confirmation: entities.OrderConfirmation{
			OrderNumber: "ON-1",
			Product:     "Pure Nothing",
			ProductID:   "p1",
			Amount:      decimal.RequireFromString("9.99"),
		},
		SessionID:      "s1",
		Customer:       entities.CustomerDetails{Name: "Ada", Email: "ada@x.io"},
		PaymentID:      "pay_1",
		GatewayOrderID: "order_1",
		RecordedAt:     at,
	}

	require.NoError(t, p.PublishConfirmed(context.Background(), receipt))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "checkout-events", msg.Topic)
	assert.Equal(t, "ON-1", string(msg.Key))
	assert.Equal(t, events.TypeConfirmed, header(msg, "event_type"))
	assert.Equal(t, "s1", header(msg, "correlation_id"))

	event, err := events.Unmarshal(msg.Value)
	require.NoError(t, err)
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "ON-1", event.AggregateID)
	assert.Equal(t, 1, event.Version)
	assert.Equal(t, at, event.Timestamp)

	var data events.ConfirmedData
	require.NoError(t, event.UnmarshalData(&data))
	assert.Equal(t, "p1", data.ProductID)
	assert.Equal(t, "pay_1", data.PaymentID)
	assert.True(t, decimal.RequireFromString("9.99").Equal(data.Amount))
}

func TestPublisher_PublishShared(t *testing.T) {
	w := &recordingWriter{}
	p := newPublisher(w)

	share := entities.ShareRecord{Platform: "twitter", SharedAt: time.Date(2024, 5, 1, 12, 5, 0, 0, time.UTC)}
	require.NoError(t, p.PublishShared(context.Background(), "ON-1", share))
	require.Len(t, w.msgs, 1)

	event, err := events.Unmarshal(w.msgs[0].Value)
	require.NoError(t, err)
	assert.Equal(t, events.TypeShared, event.EventType)
	assert.Empty(t, header(w.msgs[0], "correlation_id"))

	var data events.SharedData
	require.NoError(t, event.UnmarshalData(&data))
	assert.Equal(t, "twitter", data.Platform)
	assert.Equal(t, share.SharedAt, data.SharedAt)
}

func TestPublisher_WriteError(t *testing.T) {
	w := &recordingWriter{err: errors.New("broker down")}
	p := newPublisher(w)

	err := p.PublishShared(context.Background(), "ON-1", entities.ShareRecord{Platform: "twitter"})
	assert.ErrorContains(t, err, "broker down")
}

func TestPublisher_EventIDsAreUnique(t *testing.T) {
	w := &recordingWriter{}
	p := newPublisher(w)

	for range 3 {
		require.NoError(t, p.PublishShared(context.Background(), "ON-1", entities.ShareRecord{Platform: "twitter"}))
	}

	seen := make(map[string]bool)
	for _, msg := range w.msgs {
		event, err := events.Unmarshal(msg.Value)
		require.NoError(t, err)
		assert.False(t, seen[event.EventID])
		seen[event.EventID] = true
	}
}
