package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"patrol/internal/delivery/api/middleware"
	"patrol/internal/delivery/api/response"
	"patrol/internal/domain/entity"
	"patrol/internal/domain/repository"
	"patrol/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ScanHandlerParams holds dependencies for ScanHandler, injected by Fx.
type ScanHandlerParams struct {
	fx.In

	ScanUC usecase.ScanUsecase
	Logger *slog.Logger
}

// ScanHandler serves scan recording and the scan log.
type ScanHandler struct {
	scanUC usecase.ScanUsecase
	logger *slog.Logger
}

// NewScanHandler is the constructor for ScanHandler
func NewScanHandler(params ScanHandlerParams) *ScanHandler {
	return &ScanHandler{
		scanUC: params.ScanUC,
		logger: params.Logger,
	}
}

// RecordScanRequest is the body of POST /api/v1/scans/record.
type RecordScanRequest struct {
	CheckpointID   string   `json:"checkpointId" validate:"required_without=QRData"`
	QRData         string   `json:"qrData"`
	DesignatedUser string   `json:"designatedUser"`
	Latitude       *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude      *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Accuracy       *float64 `json:"accuracy" validate:"omitempty,gte=0"`
	Notes          string   `json:"notes" validate:"max=1000"`
}

// RecordScan verifies and records one scan for the authenticated guard. Recorded scans answer 201
// whether they passed or failed; only a designation mismatch is rejected.
func (h *ScanHandler) RecordScan(c echo.Context) error {
	guardID, ok := middleware.GetGuardID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid guard ID in token")
	}

	var req RecordScanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid scan input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	recorded, err := h.scanUC.RecordScan(c.Request().Context(), guardID, &usecase.RecordScanInput{
		CheckpointID:   entity.CheckpointID(strings.TrimSpace(req.CheckpointID)),
		QRData:         req.QRData,
		DesignatedUser: req.DesignatedUser,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Accuracy:       req.Accuracy,
		Notes:          req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, recorded)
}

// ListScans returns the scan log filtered by guardId, checkpointId and limit.
func (h *ScanHandler) ListScans(c echo.Context) error {
	var filter repository.ScanFilter

	if raw := c.QueryParam("guardId"); raw != "" {
		guardID, err := entity.ParseGuardID(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "guardId must be a positive integer")
		}
		filter.GuardID = guardID
	}
	filter.CheckpointID = entity.CheckpointID(strings.TrimSpace(c.QueryParam("checkpointId")))

	limit, err := parseLimit(c.QueryParam("limit"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "limit must be an integer")
	}
	filter.Limit = limit

	scans, err := h.scanUC.ListScans(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, scans)
}

// parseLimit returns 0 for an absent limit so the usecase applies its default.
func parseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return limit, nil
}
