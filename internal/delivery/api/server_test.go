package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"patrol/config"
	apimiddleware "patrol/internal/delivery/api/middleware"
	"patrol/internal/delivery/api/router"
	"patrol/internal/delivery/api/router/handler"
	deliverycontext "patrol/internal/delivery/context"
	"patrol/internal/domain/entity"
	"patrol/internal/domain/service"
	mockService "patrol/internal/mocks/service"
	mockUsecase "patrol/internal/mocks/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiMocks struct {
	tokenSvc    *mockService.MockTokenService
	scanUC      *mockUsecase.MockScanUsecase
	dashboardUC *mockUsecase.MockDashboardUsecase
}

func newTestAPI(t *testing.T) (*echo.Echo, apiMocks) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := apiMocks{
		tokenSvc:    mockService.NewMockTokenService(t),
		scanUC:      mockUsecase.NewMockScanUsecase(t),
		dashboardUC: mockUsecase.NewMockDashboardUsecase(t),
	}

	e := NewEcho(&config.Config{}, logger, apimiddleware.NewErrorMiddleware(logger))
	router.NewRouter(router.RouterParams{
		AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{SessionUC: mockUsecase.NewMockSessionUsecase(t), Logger: logger}),
		ScanHandler:         handler.NewScanHandler(handler.ScanHandlerParams{ScanUC: m.scanUC, Logger: logger}),
		DashboardHandler:    handler.NewDashboardHandler(handler.DashboardHandlerParams{DashboardUC: m.dashboardUC, Logger: logger}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{NotificationUC: mockUsecase.NewMockNotificationUsecase(t), Logger: logger}),
		CheckpointHandler:   handler.NewCheckpointHandler(handler.CheckpointHandlerParams{CheckpointUC: mockUsecase.NewMockCheckpointUsecase(t), Logger: logger}),
		GuardHandler:        handler.NewGuardHandler(handler.GuardHandlerParams{GuardUC: mockUsecase.NewMockGuardUsecase(t), Logger: logger}),
		AuthMiddleware:      apimiddleware.NewAuthMiddleware(m.tokenSvc),
	}).RegisterRoutes(e)

	return e, m
}

func (m apiMocks) issue(token, subject string, roles ...string) {
	m.tokenSvc.EXPECT().ValidateToken(token).Return(&service.Claims{
		Roles:            roles,
		Type:             service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
	}, nil)
}

func doRequest(e *echo.Echo, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func errorCodeOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestAPI_Health(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doRequest(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	requestID := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEmpty(t, requestID)
	assert.Contains(t, rec.Body.String(), requestID)
}

func TestAPI_RouteProtection(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		token  string
		roles  []string
		status int
		code   string
	}{
		{name: "scan without token", method: http.MethodPost, path: "/api/v1/scans/record", status: http.StatusUnauthorized, code: "MISSING_TOKEN"},
		{name: "admin cannot record scans", method: http.MethodPost, path: "/api/v1/scans/record", token: "admin", roles: []string{"admin"}, status: http.StatusForbidden, code: "FORBIDDEN"},
		{name: "guard cannot read dashboard", method: http.MethodGet, path: "/api/v1/dashboard/stats", token: "guard", roles: []string{"guard"}, status: http.StatusForbidden, code: "FORBIDDEN"},
		{name: "guard cannot manage guards", method: http.MethodGet, path: "/api/v1/guards", token: "guard", roles: []string{"guard"}, status: http.StatusForbidden, code: "FORBIDDEN"},
		{name: "unknown route", method: http.MethodGet, path: "/nope", status: http.StatusNotFound, code: "HTTP_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, m := newTestAPI(t)
			if tt.token != "" {
				m.issue(tt.token, "subject", tt.roles...)
			}

			rec := doRequest(e, tt.method, tt.path, tt.token)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, errorCodeOf(t, rec))
		})
	}
}

func TestAPI_AdminReadsDashboard(t *testing.T) {
	e, m := newTestAPI(t)
	m.issue("admin", "admin-1", "admin")
	m.dashboardUC.EXPECT().GetStats(mock.Anything).Return(&entity.DashboardStats{TotalGuards: 3}, nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/dashboard/stats", "admin")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalGuards":3`)
}

func TestAPI_GuardListsNothingButRecords(t *testing.T) {
	e, m := newTestAPI(t)
	m.issue("guard", "7", "guard")

	rec := doRequest(e, http.MethodGet, "/api/v1/scans", "guard")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	m.scanUC.AssertNotCalled(t, "ListScans", mock.Anything, mock.Anything)
}
