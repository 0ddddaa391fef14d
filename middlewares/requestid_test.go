package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexicon/middlewares"
)

func echoRequestID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(middlewares.RequestIDFromContext(r.Context())))
	})
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates uuid", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		middlewares.RequestID()(echoRequestID()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Body.String()
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		require.Equal(t, id, rec.Header().Get("X-Request-ID"))
	})

	t.Run("keeps upstream id", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Correlation-ID", "upstream-1")
		rec := httptest.NewRecorder()
		middlewares.RequestID()(echoRequestID()).ServeHTTP(rec, req)

		require.Equal(t, "upstream-1", rec.Body.String())
		require.Equal(t, "upstream-1", rec.Header().Get("X-Request-ID"))
	})

	t.Run("header order", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "first")
		req.Header.Set("X-Correlation-ID", "second")
		rec := httptest.NewRecorder()
		middlewares.RequestID()(echoRequestID()).ServeHTTP(rec, req)

		require.Equal(t, "first", rec.Body.String())
	})

	t.Run("oversized id replaced", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", strings.Repeat("a", 500))
		rec := httptest.NewRecorder()
		middlewares.RequestID(middlewares.WithRequestIDGenerator(func() string { return "generated" }))(echoRequestID()).
			ServeHTTP(rec, req)

		require.Equal(t, "generated", rec.Body.String())
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "ignored")
		req.Header.Set("Traceparent", "trace-1")
		rec := httptest.NewRecorder()
		middlewares.RequestID(middlewares.WithRequestIDHeaders("Traceparent"))(echoRequestID()).ServeHTTP(rec, req)

		require.Equal(t, "trace-1", rec.Body.String())
	})
}
