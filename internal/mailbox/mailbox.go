package mailbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const channelPrefix = "mailbox:"

// Mailbox is a single-slot drop box shared between processes. A payload is
// consumed by at most one reader.
type Mailbox struct {
	logger       *slog.Logger
	client       *redis.Client
	ttl          time.Duration
	pollInterval time.Duration
}

func New(logger *slog.Logger, client *redis.Client, ttl, pollInterval time.Duration) *Mailbox {
	return &Mailbox{
		logger:       logger.With(slog.String("component", "mailbox")),
		client:       client,
		ttl:          ttl,
		pollInterval: pollInterval,
	}
}

func Key(prefix, sessionID string) string {
	return prefix + ":" + sessionID
}

// Post overwrites the slot and wakes the watchers.
func (m *Mailbox) Post(ctx context.Context, key string, payload []byte) error {
	_, err := m.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, payload, m.ttl)
		pipe.Publish(ctx, channelPrefix+key, "posted")
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to post to mailbox: %w", err)
	}
	return nil
}

// Take consumes the payload, if any.
func (m *Mailbox) Take(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := m.client.GetDel(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to take from mailbox: %w", err)
	}
	return data, true, nil
}

// Watch calls fn for every payload posted under key until ctx is done. It
// wakes on publish and also polls, so a missed notification is only delayed.
func (m *Mailbox) Watch(ctx context.Context, key string, fn func(payload []byte)) {
	logger := m.logger.With(slog.String("key", key))

	sub := m.client.Subscribe(ctx, channelPrefix+key)
	defer sub.Close()
	notifications := sub.Channel()

	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	logger.Debug("mailbox watch started")
	m.drain(ctx, logger, key, fn)

	for {
		select {
		case <-ctx.Done():
			logger.Debug("mailbox watch stopped")
			return
		case _, ok := <-notifications:
			if !ok {
				notifications = nil
				continue
			}
			m.drain(ctx, logger, key, fn)
		case <-ticker.C:
			m.drain(ctx, logger, key, fn)
		}
	}
}

func (m *Mailbox) drain(ctx context.Context, logger *slog.Logger, key string, fn func([]byte)) {
	data, ok, err := m.Take(ctx, key)
	if err != nil {
		if ctx.Err() == nil {
			logger.Warn("mailbox read failed", slog.Any("error", err))
		}
		return
	}
	if ok {
		fn(data)
	}
}
