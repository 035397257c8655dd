package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"today-games-service/internal/logging"
	"today-games-service/internal/metrics"
	"today-games-service/internal/testutil"
)

func TestLoggingMiddlewareSetsRequestIDAndLogs(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		assert.NotEmpty(t, RequestIDFromContext(r.Context()))
		assert.NotNil(t, logging.FromContext(r.Context(), nil))
		w.WriteHeader(http.StatusTeapot)
	})

	handler := LoggingMiddleware(logger, metrics.NewRecorder(), next)
	rr := testutil.Serve(handler, http.MethodGet, PathTodayGames, nil)

	assert.True(t, nextCalled)
	testutil.AssertStatus(t, rr, http.StatusTeapot)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	assert.Contains(t, buf.String(), "request complete")
	assert.Contains(t, buf.String(), "status_code=418")
}

func TestLoggingMiddlewareKeepsValidIncomingRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc-123", RequestIDFromContext(r.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, PathHealth, nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, nil, next), req)

	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-ID"))
}

func TestLoggingMiddlewareReplacesInvalidRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, PathHealth, nil)
	req.Header.Set("X-Request-ID", "not valid!")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, nil, next), req)

	got := rr.Header().Get("X-Request-ID")
	assert.NotEmpty(t, got)
	assert.NotEqual(t, "not valid!", got)
}

func TestLoggingMiddlewareUsesForwardedFor(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, PathTodayGames, nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.1")
	testutil.ServeRequest(LoggingMiddleware(logger, nil, next), req)

	assert.Contains(t, buf.String(), "client_ip=198.51.100.1")
}

func TestLoggingMiddlewareNilLoggerFallsBackToDefault(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	assert.NotPanics(t, func() {
		testutil.Serve(LoggingMiddleware(nil, nil, next), http.MethodGet, PathHealth, nil)
	})
}

func TestResponseWriterKeepsFirstStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr, status: http.StatusOK}

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusInternalServerError)
	assert.Equal(t, http.StatusAccepted, w.status)
}

func TestResponseWriterWriteImpliesOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr, status: http.StatusOK}

	_, err := w.Write([]byte("x"))
	require.NoError(t, err)
	w.WriteHeader(http.StatusTeapot)
	assert.Equal(t, http.StatusOK, w.status)
}

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		PathTodayGames:   PathTodayGames,
		PathHealth:       PathHealth,
		"":               pathOther,
		"/api/other":     pathOther,
		"/random/123456": pathOther,
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizePath(in), in)
	}
}

func TestRequestIDHelpers(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIDFromContext(ctx))

	ctx = withRequestID(ctx, "abc123")
	assert.Equal(t, "abc123", RequestIDFromContext(ctx))

	assert.Empty(t, RequestIDFromContext(nil))
}

func BenchmarkLoggingMiddleware(b *testing.B) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	rec := metrics.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Microsecond)
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingMiddleware(logger, rec, next)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, PathTodayGames, nil)
		handler.ServeHTTP(rr, req)
	}
}
