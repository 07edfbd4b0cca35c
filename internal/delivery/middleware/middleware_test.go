package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"patrol/config"
	deliverycontext "patrol/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	var seen string
	handler := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})

	require.NoError(t, handler(c))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, seen, deliverycontext.GetRequestID(c))
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	tests := []struct {
		name   string
		header string
		reused bool
	}{
		{name: "short id", header: "client-123", reused: true},
		{name: "oversized id", header: strings.Repeat("x", maxRequestIDLength+1), reused: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := NewRequestIDMiddleware(slog.Default()).Process(func(echo.Context) error { return nil })
			require.NoError(t, handler(c))

			assert.Equal(t, tt.reused, rec.Header().Get(deliverycontext.HeaderXRequestID) == tt.header)
		})
	}
}

func TestLoggerMiddleware_HandsErrorsToErrorHandler(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/boom", nil), rec)

	cfg := &config.Config{}
	handler := NewLoggerMiddleware(logger, cfg).Handle(func(echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "boom")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "HTTP request")
	assert.Contains(t, buf.String(), "status=500")
}
