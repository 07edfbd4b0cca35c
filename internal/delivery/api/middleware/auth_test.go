package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "patrol/internal/delivery/context"
	"patrol/internal/domain/entity"
	"patrol/internal/domain/service"
	mockService "patrol/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func accessClaims(subject string, roles ...string) *service.Claims {
	return &service.Claims{
		Roles:            roles,
		Type:             service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("good").Return(accessClaims("7", "guard"), nil)

	c, _ := newAuthContext("Bearer good")
	called := false
	handler := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
		called = true

		return nil
	})

	require.NoError(t, handler(c))
	assert.True(t, called)

	guardID, ok := GetGuardID(c)
	assert.True(t, ok)
	assert.Equal(t, entity.GuardID(7), guardID)

	_, ok = GetAdminID(c)
	assert.False(t, ok)
}

func TestAuthMiddleware_Authenticate_Rejects(t *testing.T) {
	refresh := accessClaims("7", "guard")
	refresh.Type = service.TokenTypeRefresh

	tests := []struct {
		name   string
		header string
		setup  func(m *mockService.MockTokenService)
	}{
		{name: "missing header"},
		{name: "not a bearer token", header: "Basic abc"},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("bad").Return(nil, errors.New("expired"))
			},
		},
		{
			name:   "unknown role",
			header: "Bearer driver",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("driver").Return(accessClaims("7", "driver"), nil)
			},
		},
		{
			name:   "refresh token",
			header: "Bearer refresh",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("refresh").Return(refresh, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			c, rec := newAuthContext(tt.header)
			handler := NewAuthMiddleware(tokenSvc).Authenticate(func(echo.Context) error {
				t.Fatal("next must not be called")

				return nil
			})

			require.NoError(t, handler(c))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name       string
		principal  *deliverycontext.Principal
		wantStatus int
	}{
		{name: "unauthenticated", wantStatus: http.StatusUnauthorized},
		{name: "wrong role", principal: &deliverycontext.Principal{Subject: "7", Roles: []string{"guard"}}, wantStatus: http.StatusForbidden},
		{name: "admin", principal: &deliverycontext.Principal{Subject: "admin-1", Roles: []string{"admin"}}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newAuthContext("")
			if tt.principal != nil {
				deliverycontext.SetPrincipal(c, *tt.principal)
			}

			handler := NewAuthMiddleware(nil).RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetAdminID(t *testing.T) {
	c, _ := newAuthContext("")
	deliverycontext.SetPrincipal(c, deliverycontext.Principal{Subject: "admin-1", Roles: []string{"admin"}})

	adminID, ok := GetAdminID(c)
	assert.True(t, ok)
	assert.Equal(t, entity.AdminID("admin-1"), adminID)

	_, ok = GetGuardID(c)
	assert.False(t, ok)
}
