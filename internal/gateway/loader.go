package gateway

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"golang.org/x/sync/singleflight"
)

type HTTPDoer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Loader fetches the gateway SDK once per process. A failed fetch is not
// remembered, so the next Ensure tries again.
type Loader struct {
	logger *slog.Logger
	doer   HTTPDoer
	url    string

	group   singleflight.Group
	loaded  atomic.Bool
	fetches atomic.Int64
}

func NewLoader(logger *slog.Logger, doer HTTPDoer, url string) *Loader {
	return &Loader{
		logger: logger.With(slog.String("component", "gateway_loader")),
		doer:   doer,
		url:    url,
	}
}

func (l *Loader) Ensure(ctx context.Context) error {
	if l.loaded.Load() {
		return nil
	}

	ch := l.group.DoChan("sdk", func() (any, error) {
		if l.loaded.Load() {
			return nil, nil
		}
		if err := l.fetch(context.WithoutCancel(ctx)); err != nil {
			return nil, err
		}
		l.loaded.Store(true)
		return nil, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			l.logger.Warn("gateway sdk unavailable", slog.Any("error", res.Err))
			return fmt.Errorf("%w: %w", entities.ErrGatewayUnavailable, res.Err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", entities.ErrGatewayUnavailable, ctx.Err())
	}
}

func (l *Loader) Loaded() bool {
	return l.loaded.Load()
}

// Fetches reports how many network fetches were made.
func (l *Loader) Fetches() int64 {
	return l.fetches.Load()
}

func (l *Loader) fetch(ctx context.Context) error {
	l.fetches.Add(1)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return fmt.Errorf("failed to build sdk request: %w", err)
	}

	resp, err := l.doer.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to fetch sdk: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch sdk: status %d", resp.StatusCode)
	}

	l.logger.Info("gateway sdk loaded", slog.String("url", l.url))
	return nil
}
