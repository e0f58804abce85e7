package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/config"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes checkout lifecycle events to a single topic keyed by order number.
type Publisher struct {
	logger *slog.Logger
	writer MessageWriter
	topic  string
}

func NewWriter(cfg config.Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequireAll,
	}
}

func NewPublisher(logger *slog.Logger, writer MessageWriter, topic string) *Publisher {
	return &Publisher{
		logger: logger.With(slog.String("component", "events")),
		writer: writer,
		topic:  topic,
	}
}

func (p *Publisher) PublishConfirmed(ctx context.Context, receipt entities.Receipt) error {
	conf := receipt.Confirmation
	event, err := newEvent(TypeConfirmed, conf.OrderNumber, receipt.RecordedAt, ConfirmedData{
		OrderNumber:    conf.OrderNumber,
		SessionID:      receipt.SessionID,
		ProductID:      conf.ProductID,
		Product:        conf.Product,
		Amount:         conf.Amount,
		PaymentID:      receipt.PaymentID,
		GatewayOrderID: receipt.GatewayOrderID,
		CustomerName:   receipt.Customer.Name,
		ConfirmedAt:    receipt.RecordedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to build confirmed event: %w", err)
	}
	event.CorrelationID = receipt.SessionID
	return p.publish(ctx, event)
}

func (p *Publisher) PublishShared(ctx context.Context, orderNumber string, share entities.ShareRecord) error {
	event, err := newEvent(TypeShared, orderNumber, share.SharedAt, SharedData{
		OrderNumber: orderNumber,
		Platform:    share.Platform,
		SharedAt:    share.SharedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to build shared event: %w", err)
	}
	return p.publish(ctx, event)
}

func (p *Publisher) publish(ctx context.Context, event *Event) error {
	data, err := event.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.AggregateID),
		Value: data,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "source", Value: []byte(event.Source)},
		},
	}
	if event.CorrelationID != "" {
		msg.Headers = append(msg.Headers, kafka.Header{Key: "correlation_id", Value: []byte(event.CorrelationID)})
	}

	// kafka-go сам повторяет запись внутри WriteMessages
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s to %s: %w", event.EventType, p.topic, err)
	}

	p.logger.Debug("event published",
		slog.String("event_type", event.EventType),
		slog.String("aggregate_id", event.AggregateID),
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
