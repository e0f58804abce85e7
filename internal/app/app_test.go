package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStarter struct {
	name  string
	calls *[]string
	err   error
}

func (s recordingStarter) Start(ctx context.Context) error {
	*s.calls = append(*s.calls, s.name)
	return s.err
}

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
}

type blockingConsumer struct {
	closed bool
}

func (c *blockingConsumer) Consume(ctx context.Context) {
	<-ctx.Done()
}

func (c *blockingConsumer) Close() error {
	c.closed = true
	return nil
}

func testConfig() config.Config {
	return config.Config{
		Http: config.Http{Host: "127.0.0.1", Port: "0", RateLimitRPS: 100, RateLimitBurst: 100},
		Cors: config.CORS{AllowedOrigins: []string{"http://localhost:5173"}},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestApplication_Routes(t *testing.T) {
	a := New(testLogger(), testConfig())
	a.SetHTTPHandlers(pingHandler{})

	tests := []struct {
		name string
		path string
		want int
	}{
		{name: "handler route", path: "/ping", want: http.StatusTeapot},
		{name: "health", path: "/healthz", want: http.StatusOK},
		{name: "metrics", path: "/metrics", want: http.StatusOK},
		{name: "unknown", path: "/nope", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			a.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestApplication_StartStop(t *testing.T) {
	var calls []string
	consumer := &blockingConsumer{}

	a := New(testLogger(), testConfig())
	a.SetConsumers(consumer)
	a.SetStarters(
		recordingStarter{name: "cache", calls: &calls},
		recordingStarter{name: "checkout", calls: &calls},
	)

	require.NoError(t, a.Start(context.Background()))
	assert.Equal(t, []string{"cache", "checkout"}, calls)

	require.NoError(t, a.Stop())
	assert.True(t, consumer.closed)
}

func TestApplication_StartFailingStarter(t *testing.T) {
	var calls []string
	boom := errors.New("boom")

	a := New(testLogger(), testConfig())
	a.SetStarters(
		recordingStarter{name: "first", calls: &calls, err: boom},
		recordingStarter{name: "second", calls: &calls},
	)

	err := a.Start(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"first"}, calls)
}

func TestApplication_RateLimitKey(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		want       int
	}{
		{name: "forwarded headers ignored", trustProxy: false, want: http.StatusTooManyRequests},
		{name: "forwarded headers trusted", trustProxy: true, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Http.RateLimitRPS = 1
			cfg.Http.RateLimitBurst = 1
			cfg.Http.TrustProxy = tt.trustProxy
			a := New(testLogger(), cfg)

			call := func(forwarded string) int {
				req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
				req.Header.Set("X-Forwarded-For", forwarded)
				rec := httptest.NewRecorder()
				a.router.ServeHTTP(rec, req)
				return rec.Code
			}

			require.Equal(t, http.StatusOK, call("203.0.113.1"))
			assert.Equal(t, tt.want, call("203.0.113.2"))
		})
	}
}
