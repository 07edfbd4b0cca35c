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

// CheckpointHandlerParams holds dependencies for CheckpointHandler, injected by Fx.
type CheckpointHandlerParams struct {
	fx.In

	CheckpointUC usecase.CheckpointUsecase
	Logger       *slog.Logger
}

// CheckpointHandler serves checkpoint management, QR codes and the map export.
type CheckpointHandler struct {
	checkpointUC usecase.CheckpointUsecase
	logger       *slog.Logger
}

// NewCheckpointHandler is the constructor for CheckpointHandler
func NewCheckpointHandler(params CheckpointHandlerParams) *CheckpointHandler {
	return &CheckpointHandler{
		checkpointUC: params.CheckpointUC,
		logger:       params.Logger,
	}
}

// CreateCheckpointRequest is the body of POST /api/v1/checkpoints.
type CreateCheckpointRequest struct {
	ID            string   `json:"id" validate:"omitempty,max=64"`
	Name          string   `json:"name" validate:"required,max=200"`
	Location      string   `json:"location" validate:"max=200"`
	Description   string   `json:"description" validate:"max=1000"`
	Latitude      *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	AllowedRadius *float64 `json:"allowedRadius" validate:"omitempty,gt=0"`
	GPSAccuracy   *float64 `json:"gpsAccuracy" validate:"omitempty,gte=0"`
}

// ListCheckpoints returns every checkpoint.
func (h *CheckpointHandler) ListCheckpoints(c echo.Context) error {
	checkpoints, err := h.checkpointUC.ListCheckpoints(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, checkpoints)
}

// CreateCheckpoint stores a new checkpoint.
func (h *CheckpointHandler) CreateCheckpoint(c echo.Context) error {
	var req CreateCheckpointRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid checkpoint input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	checkpoint, err := h.checkpointUC.CreateCheckpoint(c.Request().Context(), &usecase.CreateCheckpointInput{
		ID:            entity.CheckpointID(req.ID),
		Name:          req.Name,
		Location:      req.Location,
		Description:   req.Description,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		AllowedRadius: req.AllowedRadius,
		GPSAccuracy:   req.GPSAccuracy,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, checkpoint)
}

// ExportGeoJSON returns located checkpoints as a GeoJSON FeatureCollection. The collection is
// written bare so map clients can load the URL directly.
func (h *CheckpointHandler) ExportGeoJSON(c echo.Context) error {
	fc, err := h.checkpointUC.ExportGeoJSON(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	body, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "failed to encode geojson")
	}

	return c.Blob(http.StatusOK, "application/geo+json", body)
}

// GetQRCode returns the checkpoint's QR code as a PNG.
func (h *CheckpointHandler) GetQRCode(c echo.Context) error {
	id := entity.CheckpointID(c.Param("id"))
	if id == "" {
		return response.BadRequest(c, "INVALID_INPUT", "checkpoint id is required")
	}

	png, err := h.checkpointUC.GetCheckpointQR(c.Request().Context(), id, c.QueryParam("designatedUser"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
