// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"patrol/config"
	deliverycontext "patrol/internal/delivery/context"
	"patrol/internal/domain/entity"
	domainerrors "patrol/internal/domain/errors"
	"patrol/internal/domain/patrol"
	"patrol/internal/domain/repository"
	"patrol/internal/domain/service"
	"patrol/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Scan log listing limits.
const (
	defaultScanListLimit = 100
	maxScanListLimit     = 500
)

type scanService struct {
	guardRepo         repository.GuardRepository
	checkpointRepo    repository.CheckpointRepository
	scanRepo          repository.ScanRepository
	qrService         service.QRCodeService
	publisher         service.EventPublisher
	defaultRadius     float64
	enforceAssignment bool
	now               func() time.Time
	logger            *slog.Logger
}

// ScanServiceParams holds dependencies for ScanService, injected by Fx.
type ScanServiceParams struct {
	fx.In

	GuardRepo      repository.GuardRepository
	CheckpointRepo repository.CheckpointRepository
	ScanRepo       repository.ScanRepository
	QRService      service.QRCodeService
	Publisher      service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewScanService is the constructor for scanService.
func NewScanService(params ScanServiceParams) usecase.ScanUsecase {
	srv := &scanService{
		guardRepo:      params.GuardRepo,
		checkpointRepo: params.CheckpointRepo,
		scanRepo:       params.ScanRepo,
		qrService:      params.QRService,
		publisher:      params.Publisher,
		defaultRadius:  entity.DefaultAllowedRadiusMeters,
		now:            time.Now,
		logger:         params.Logger,
	}
	if params.Config != nil && params.Config.Patrol != nil {
		if params.Config.Patrol.DefaultRadiusMeters > 0 {
			srv.defaultRadius = params.Config.Patrol.DefaultRadiusMeters
		}
		srv.enforceAssignment = params.Config.Patrol.EnforceAssignment
	}

	return srv
}

func (srv *scanService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordScan resolves the guard and checkpoint, rejects scans of QR codes designated for someone else,
// runs the geofence and appends exactly one scan.
func (srv *scanService) RecordScan(ctx context.Context, guardID entity.GuardID, input *usecase.RecordScanInput) (*usecase.RecordedScan, error) {
	checkpointID, designatedUser, err := srv.resolveTarget(input)
	if err != nil {
		return nil, err
	}

	guard, err := srv.guardRepo.FindByID(ctx, guardID)
	if err != nil {
		if errors.Is(err, repository.ErrGuardNotFound) {
			return nil, errors.Wrap(domainerrors.ErrGuardNotFound, "record scan")
		}

		return nil, errors.Wrap(err, "failed to find guard")
	}

	checkpoint, err := srv.checkpointRepo.FindByID(ctx, checkpointID)
	if err != nil {
		if errors.Is(err, repository.ErrCheckpointNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCheckpointNotFound, "record scan")
		}

		return nil, errors.Wrap(err, "failed to find checkpoint")
	}

	if !guard.Active() {
		return nil, errors.Wrap(domainerrors.ErrGuardInactive, "record scan")
	}

	if !patrol.IsDesignated(designatedUser, guard.Name) {
		srv.log(ctx).Warn("Scan rejected, QR code designated for another guard",
			slog.String("guardID", guard.ID.String()),
			slog.String("checkpointID", checkpoint.ID.String()),
			slog.String("designatedUser", designatedUser),
		)

		return nil, domainerrors.NewNotDesignatedError(strings.TrimSpace(designatedUser), guard.Name)
	}

	verdict := patrol.EvaluateGeofence(patrol.GeofenceInput{
		GuardLatitude:  input.Latitude,
		GuardLongitude: input.Longitude,
		Accuracy:       input.Accuracy,
		Checkpoint:     checkpoint,
		DefaultRadius:  srv.defaultRadius,
	})

	now := srv.now()
	scan := &entity.Scan{
		ID:             uuid.NewString(),
		GuardID:        guard.ID,
		CheckpointID:   checkpoint.ID,
		ScannedAt:      now,
		RecordedAt:     now,
		Result:         verdict.Result,
		FailureReason:  verdict.FailureReason,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		Accuracy:       input.Accuracy,
		DistanceMeters: verdict.DistanceMeters,
		RequiredRadius: verdict.RequiredRadius,
		Notes:          input.Notes,
	}
	if srv.enforceAssignment && !guard.IsAssigned(checkpoint.ID) {
		reason := patrol.ReasonNotAssigned
		scan.Result = entity.ScanResultFailed
		scan.FailureReason = &reason
	}

	if err := srv.scanRepo.Append(ctx, scan); err != nil {
		return nil, errors.Wrap(err, "failed to append scan")
	}

	srv.log(ctx).Info("Scan recorded",
		slog.String("scanID", scan.ID),
		slog.String("guardID", guard.ID.String()),
		slog.String("checkpointID", checkpoint.ID.String()),
		slog.String("result", string(scan.Result)),
	)

	srv.publishRecorded(ctx, scan)

	return &usecase.RecordedScan{
		Scan:           scan,
		GuardName:      guard.Name,
		CheckpointName: checkpoint.Name,
		Message:        scanMessage(scan),
		Designated:     true,
	}, nil
}

// resolveTarget merges the explicit request fields with a decoded QR payload.
func (srv *scanService) resolveTarget(input *usecase.RecordScanInput) (entity.CheckpointID, string, error) {
	if input == nil {
		return "", "", errors.Wrap(domainerrors.ErrInvalidInput, "scan input is required")
	}

	checkpointID := entity.CheckpointID(strings.TrimSpace(input.CheckpointID.String()))
	designatedUser := input.DesignatedUser

	if strings.TrimSpace(input.QRData) != "" {
		payload, err := srv.qrService.ParseCheckpointQR(input.QRData)
		if err != nil {
			return "", "", errors.Wrap(domainerrors.ErrInvalidQRPayload.WithDetails(err.Error()), "record scan")
		}
		if checkpointID != "" && checkpointID != payload.CheckpointID {
			return "", "", errors.Wrap(domainerrors.ErrInvalidQRPayload.WithDetails("checkpoint id does not match QR code"), "record scan")
		}
		checkpointID = payload.CheckpointID
		if strings.TrimSpace(designatedUser) == "" {
			designatedUser = payload.DesignatedUser
		}
	}

	if checkpointID == "" {
		return "", "", errors.Wrap(domainerrors.ErrInvalidInput.WithDetails("checkpointId or qrData is required"), "record scan")
	}

	return checkpointID, designatedUser, nil
}

func (srv *scanService) publishRecorded(ctx context.Context, scan *entity.Scan) {
	event := &service.ScanRecordedEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		ScanID:         scan.ID,
		GuardID:        int64(scan.GuardID),
		CheckpointID:   scan.CheckpointID.String(),
		Result:         string(scan.Result),
		FailureReason:  scan.Reason(),
		DistanceMeters: scan.DistanceMeters,
		ScannedAt:      scan.ScannedAt,
	}

	if err := srv.publisher.PublishScanRecorded(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish scan event",
			slog.String("scanID", scan.ID),
			slog.Any("error", err),
		)
	}
}

func scanMessage(scan *entity.Scan) string {
	if scan.Succeeded() {
		return "Checkpoint verified"
	}

	return "Scan recorded as failed: " + scan.Reason()
}

// ListScans returns the scan log, newest first.
func (srv *scanService) ListScans(ctx context.Context, filter repository.ScanFilter) ([]*entity.Scan, error) {
	filter.Limit = patrol.ClampLimit(filter.Limit, defaultScanListLimit, maxScanListLimit)

	scans, err := srv.scanRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list scans")
	}

	return scans, nil
}
