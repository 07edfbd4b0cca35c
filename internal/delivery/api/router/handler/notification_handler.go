package handler

import (
	"log/slog"
	"net/http"

	"patrol/internal/delivery/api/middleware"
	"patrol/internal/delivery/api/response"
	"patrol/internal/domain/entity"
	"patrol/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the admin notification feed.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// UpdateStateRequest is the body of POST /api/v1/notifications/state.
type UpdateStateRequest struct {
	Reads    []string `json:"reads" validate:"omitempty,dive,max=256"`
	Acks     []string `json:"acks" validate:"omitempty,dive,max=256"`
	Deletes  []string `json:"deletes" validate:"omitempty,dive,max=256"`
	ResetAll bool     `json:"resetAll"`
}

// GetFeed returns the calling admin's notification feed.
func (h *NotificationHandler) GetFeed(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	feed, err := h.notificationUC.GetFeed(c.Request().Context(), adminID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feed)
}

// UpdateState merges read, acknowledge and delete marks into the calling admin's state.
func (h *NotificationHandler) UpdateState(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	var req UpdateStateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid notification state input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.notificationUC.UpdateState(c.Request().Context(), adminID, &entity.NotificationStateUpdate{
		Reads:    req.Reads,
		Acks:     req.Acks,
		Deletes:  req.Deletes,
		ResetAll: req.ResetAll,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}
