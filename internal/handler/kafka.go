package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/config"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/mailbox"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
)

// Relay metrics, one series per completion handled by Consume.
var (
	relayResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Subsystem: "completion_relay",
		Name:      "results_total",
		Help:      "Completion events by relay result (posted, dead_lettered, dropped).",
	}, []string{"result"})

	relayCommitErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Subsystem: "completion_relay",
		Name:      "commit_errors_total",
		Help:      "Offset commits that failed after a completion was handled.",
	})

	relayDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "checkout_service",
		Subsystem: "completion_relay",
		Name:      "duration_seconds",
		Help:      "Time from fetching a completion to settling it.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	})
)

type MailboxPoster interface {
	Post(ctx context.Context, key string, payload []byte) error
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaHandler relays completion events from other contexts into session mailboxes.
type kafkaHandler struct {
	dlq        MessageWriter
	reader     MessageReader
	logger     *slog.Logger
	validate   *validator.Validate
	mailbox    MailboxPoster
	mailboxKey string
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, mailbox MailboxPoster, mailboxKey string) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.CompletionTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return newKafkaHandler(logger, reader, dlq, mailbox, mailboxKey)
}

func newKafkaHandler(logger *slog.Logger, reader MessageReader, dlq MessageWriter, mailbox MailboxPoster, mailboxKey string) *kafkaHandler {
	return &kafkaHandler{
		logger:     logger.With(slog.String("handler", "kafka")),
		reader:     reader,
		dlq:        dlq,
		validate:   validator.New(),
		mailbox:    mailbox,
		mailboxKey: mailboxKey,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			} else {
				h.logger.Error("failed to fetch message", slog.Any("error", err))
				continue
			}
		}

		start := time.Now()
		relayResults.WithLabelValues(h.relay(ctx, m)).Inc()
		relayDuration.Observe(time.Since(start).Seconds())

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			relayCommitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

// relay posts m to its session mailbox, falling back to the DLQ.
// The message is committed whatever label comes back.
func (h *kafkaHandler) relay(ctx context.Context, m kafka.Message) string {
	err := h.handleCompletion(ctx, m)
	if err == nil {
		return "posted"
	}
	h.logger.Error("failed to handle message", slog.Any("error", err))

	// В библиотеке уже есть retry
	if err := h.WriteToDLQ(ctx, m); err != nil {
		h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
		return "dropped"
	}
	return "dead_lettered"
}

func (h *kafkaHandler) handleCompletion(ctx context.Context, m kafka.Message) error {
	var c Completion
	if err := json.Unmarshal(m.Value, &c); err != nil {
		return fmt.Errorf("failed to unmarshal completion: %w", err)
	}

	if err := h.validate.Struct(c); err != nil {
		return fmt.Errorf("invalid completion data: %w", err)
	}
	if err := h.validate.Var(c.OrderNumber, "required"); err != nil {
		return fmt.Errorf("invalid completion data: order number: %w", err)
	}

	payload, err := c.Signal.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal signal: %w", err)
	}

	return h.mailbox.Post(ctx, mailbox.Key(h.mailboxKey, c.SessionID), payload)
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
