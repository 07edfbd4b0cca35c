package handler

import (
	"log/slog"
	"net/http"

	"patrol/internal/delivery/api/response"
	"patrol/internal/domain/entity"
	"patrol/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// AuthHandler serves guard and admin login.
type AuthHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// GuardLoginRequest is the body of POST /auth/guards/login.
type GuardLoginRequest struct {
	GuardID int64  `json:"guardId" validate:"required,gt=0"`
	PIN     string `json:"pin" validate:"required"`
}

// AdminLoginRequest is the body of POST /auth/admins/login.
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// GuardLogin exchanges a guard id and PIN for tokens.
func (h *AuthHandler) GuardLogin(c echo.Context) error {
	var req GuardLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.sessionUC.GuardLogin(c.Request().Context(), entity.GuardID(req.GuardID), req.PIN)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}

// AdminLogin exchanges admin credentials for tokens.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.sessionUC.AdminLogin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}
