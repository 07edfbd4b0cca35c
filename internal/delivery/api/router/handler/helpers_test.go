package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"patrol/internal/delivery/api/middleware"
	"patrol/internal/delivery/api/validator"
	deliverycontext "patrol/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

// serve runs one request through e, optionally as an authenticated principal.
func serve(e *echo.Echo, method, path, body string, principal *deliverycontext.Principal) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	if principal != nil {
		p := *principal
		e.Pre(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				deliverycontext.SetPrincipal(c, p)

				return next(c)
			}
		})
	}
	e.ServeHTTP(rec, req)

	return rec
}

func asGuard(id string) *deliverycontext.Principal {
	return &deliverycontext.Principal{Subject: id, Roles: []string{"guard"}}
}

func asAdmin(id string) *deliverycontext.Principal {
	return &deliverycontext.Principal{Subject: id, Roles: []string{"admin"}}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	errBody, ok := decodeBody(t, rec)["error"].(map[string]any)
	require.True(t, ok, "expected error envelope, got %s", rec.Body.String())

	code, _ := errBody["code"].(string)

	return code
}

func ptrFloat(v float64) *float64 {
	return &v
}
