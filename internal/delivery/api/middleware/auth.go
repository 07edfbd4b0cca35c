package middleware

import (
	"strings"

	"patrol/internal/delivery/api/response"
	deliverycontext "patrol/internal/delivery/context"
	"patrol/internal/domain/entity"
	"patrol/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates bearer access tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		if claims.Type != service.TokenTypeAccess {
			return response.Unauthorized(c, "INVALID_TOKEN", "Access token required")
		}
		if claims.Subject == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token subject is missing")
		}
		roles := entity.RolesFromStrings(claims.Roles)
		if len(roles) == 0 {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token carries no known role")
		}

		deliverycontext.SetPrincipal(c, deliverycontext.Principal{
			Subject: claims.Subject,
			Roles:   roles.ToStrings(),
		})

		return next(c)
	}
}

// RequireRole only lets callers holding role through. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
			}
			if !p.HasRole(string(role)) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+string(role)+"' role")
			}

			return next(c)
		}
	}
}

// GetGuardID returns the guard id of an authenticated guard.
func GetGuardID(c echo.Context) (entity.GuardID, bool) {
	p, ok := deliverycontext.GetPrincipal(c)
	if !ok || !p.HasRole(string(entity.RoleGuard)) {
		return 0, false
	}
	id, err := entity.ParseGuardID(p.Subject)
	if err != nil {
		return 0, false
	}

	return id, true
}

// GetAdminID returns the admin id of an authenticated admin.
func GetAdminID(c echo.Context) (entity.AdminID, bool) {
	p, ok := deliverycontext.GetPrincipal(c)
	if !ok || !p.HasRole(string(entity.RoleAdmin)) || p.Subject == "" {
		return "", false
	}

	return entity.AdminID(p.Subject), true
}
