package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		status  int
		logged  bool
		level   string
		pattern string
	}{
		{name: "ok request", path: "/sessions/s1", status: http.StatusOK, logged: true, level: "INFO", pattern: "/sessions/{session_id}"},
		{name: "client error", path: "/sessions/s1", status: http.StatusConflict, logged: true, level: "WARN"},
		{name: "server error", path: "/sessions/s1", status: http.StatusBadGateway, logged: true, level: "ERROR"},
		{name: "health probe", path: "/healthz", status: http.StatusOK, logged: false},
		{name: "failing health probe", path: "/healthz", status: http.StatusServiceUnavailable, logged: true, level: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			r := chi.NewRouter()
			r.Use(Logger(logger))
			handler := func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte("body"))
			}
			r.Get("/sessions/{session_id}", handler)
			r.Get("/healthz", handler)

			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			if !tt.logged {
				assert.Empty(t, buf.String())
				return
			}
			out := buf.String()
			assert.Contains(t, out, "level="+tt.level)
			assert.Contains(t, out, "bytes=4")
			if tt.pattern != "" {
				assert.Contains(t, out, "route="+tt.pattern)
			}
		})
	}
}

func TestResponseWriter_KeepsFirstStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := wrapResponseWriter(rec)

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)
	n, err := rw.Write([]byte("abc"))

	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusCreated, rw.status)
	assert.Equal(t, 3, rw.bytes)
}

func TestRoutePattern(t *testing.T) {
	var got string
	r := chi.NewRouter()
	r.Get("/receipts/{order_number}", func(w http.ResponseWriter, r *http.Request) {
		got = routePattern(r)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/receipts/BN-1", nil))
	assert.Equal(t, "/receipts/{order_number}", got)

	assert.Equal(t, "unknown", routePattern(httptest.NewRequest(http.MethodGet, "/", nil)))
}
