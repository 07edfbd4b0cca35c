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

// GuardHandlerParams holds dependencies for GuardHandler, injected by Fx.
type GuardHandlerParams struct {
	fx.In

	GuardUC usecase.GuardUsecase
	Logger  *slog.Logger
}

// GuardHandler serves guard listing and assignment management.
type GuardHandler struct {
	guardUC usecase.GuardUsecase
	logger  *slog.Logger
}

// NewGuardHandler is the constructor for GuardHandler
func NewGuardHandler(params GuardHandlerParams) *GuardHandler {
	return &GuardHandler{
		guardUC: params.GuardUC,
		logger:  params.Logger,
	}
}

// ReplaceAssignmentsRequest is the body of PUT /api/v1/guards/:id/assignments.
type ReplaceAssignmentsRequest struct {
	CheckpointIDs []string `json:"checkpointIds" validate:"required,dive,required"`
}

// ListGuards returns every guard with their assignments.
func (h *GuardHandler) ListGuards(c echo.Context) error {
	guards, err := h.guardUC.ListGuards(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, guards)
}

// ReplaceAssignments sets the guard's assigned checkpoints.
func (h *GuardHandler) ReplaceAssignments(c echo.Context) error {
	guardID, err := entity.ParseGuardID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "guard id must be a positive integer")
	}

	var req ReplaceAssignmentsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ids := make([]entity.CheckpointID, 0, len(req.CheckpointIDs))
	for _, id := range req.CheckpointIDs {
		ids = append(ids, entity.CheckpointID(id))
	}

	guard, err := h.guardUC.ReplaceAssignments(c.Request().Context(), guardID, ids)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, guard)
}

// ResetAssignment restarts one assignment from now.
func (h *GuardHandler) ResetAssignment(c echo.Context) error {
	guardID, err := entity.ParseGuardID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "guard id must be a positive integer")
	}

	guard, err := h.guardUC.ResetAssignment(c.Request().Context(), guardID, entity.CheckpointID(c.Param("checkpointId")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, guard)
}
