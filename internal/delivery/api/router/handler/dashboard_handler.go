package handler

import (
	"log/slog"
	"net/http"

	"patrol/internal/delivery/api/response"
	"patrol/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	Logger      *slog.Logger
}

// DashboardHandler serves the admin dashboard read models.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	logger      *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		logger:      params.Logger,
	}
}

// GetStats returns today's patrol statistics with day-over-day changes.
func (h *DashboardHandler) GetStats(c echo.Context) error {
	stats, err := h.dashboardUC.GetStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// GetTimeline returns the most recent scans.
func (h *DashboardHandler) GetTimeline(c echo.Context) error {
	limit, err := parseLimit(c.QueryParam("limit"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "limit must be an integer")
	}

	timeline, err := h.dashboardUC.GetTimeline(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, timeline)
}

// GetGuardPerformance returns today's metrics per active guard.
func (h *DashboardHandler) GetGuardPerformance(c echo.Context) error {
	rows, err := h.dashboardUC.GetGuardPerformance(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows)
}
