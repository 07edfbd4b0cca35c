package impl

import (
	"context"
	"log/slog"
	"math"
	"net/url"
	"strings"
	"time"

	"patrol/config"
	deliverycontext "patrol/internal/delivery/context"
	"patrol/internal/domain/entity"
	domainerrors "patrol/internal/domain/errors"
	"patrol/internal/domain/repository"
	"patrol/internal/domain/service"
	"patrol/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const qrContentType = "image/png"

type checkpointService struct {
	checkpointRepo repository.CheckpointRepository
	qrService      service.QRCodeService
	artifacts      service.ArtifactStore
	defaultRadius  float64
	now            func() time.Time
	logger         *slog.Logger
}

// CheckpointServiceParams holds dependencies for CheckpointService, injected by Fx.
type CheckpointServiceParams struct {
	fx.In

	CheckpointRepo repository.CheckpointRepository
	QRService      service.QRCodeService
	Artifacts      service.ArtifactStore
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCheckpointService is the constructor for checkpointService.
func NewCheckpointService(params CheckpointServiceParams) usecase.CheckpointUsecase {
	defaultRadius := entity.DefaultAllowedRadiusMeters
	if params.Config != nil && params.Config.Patrol != nil && params.Config.Patrol.DefaultRadiusMeters > 0 {
		defaultRadius = params.Config.Patrol.DefaultRadiusMeters
	}

	return &checkpointService{
		checkpointRepo: params.CheckpointRepo,
		qrService:      params.QRService,
		artifacts:      params.Artifacts,
		defaultRadius:  defaultRadius,
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (srv *checkpointService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCheckpoints returns every checkpoint.
func (srv *checkpointService) ListCheckpoints(ctx context.Context) ([]*entity.Checkpoint, error) {
	checkpoints, err := srv.checkpointRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list checkpoints")
	}

	return checkpoints, nil
}

// CreateCheckpoint stores a new checkpoint. A checkpoint with coordinates always gets a positive radius.
func (srv *checkpointService) CreateCheckpoint(ctx context.Context, input *usecase.CreateCheckpointInput) (*entity.Checkpoint, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput.WithDetails("name is required"), "create checkpoint")
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput.WithDetails("latitude and longitude must be set together"), "create checkpoint")
	}

	now := srv.now()
	checkpoint := &entity.Checkpoint{
		ID:          input.ID,
		Name:        strings.TrimSpace(input.Name),
		Location:    input.Location,
		Description: input.Description,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		GPSAccuracy: input.GPSAccuracy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if checkpoint.ID == "" {
		checkpoint.ID = entity.CheckpointID(uuid.NewString())
	}

	if input.Latitude != nil {
		radius := srv.defaultRadius
		if input.AllowedRadius != nil {
			radius = *input.AllowedRadius
		}
		if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
			return nil, errors.Wrap(domainerrors.ErrInvalidRadius, "create checkpoint")
		}
		checkpoint.AllowedRadius = &radius
	} else if input.AllowedRadius != nil {
		radius := *input.AllowedRadius
		checkpoint.AllowedRadius = &radius
	}

	if err := srv.checkpointRepo.Create(ctx, checkpoint); err != nil {
		return nil, errors.Wrap(err, "failed to create checkpoint")
	}

	srv.log(ctx).Info("Checkpoint created", slog.String("checkpointID", checkpoint.ID.String()))

	return checkpoint, nil
}

// ExportGeoJSON returns located checkpoints as point features. Checkpoints without coordinates are left out.
func (srv *checkpointService) ExportGeoJSON(ctx context.Context) (*geojson.FeatureCollection, error) {
	checkpoints, err := srv.checkpointRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list checkpoints")
	}

	fc := geojson.NewFeatureCollection()
	for _, cp := range checkpoints {
		point, ok := cp.Point()
		if !ok {
			continue
		}

		feature := geojson.NewFeature(point)
		feature.ID = cp.ID.String()
		feature.Properties["name"] = cp.Name
		feature.Properties["location"] = cp.Location
		feature.Properties["allowedRadius"] = cp.RadiusOr(srv.defaultRadius)
		fc.Append(feature)
	}

	return fc, nil
}

// GetCheckpointQR renders the checkpoint's QR code, reusing a previously stored image when present.
func (srv *checkpointService) GetCheckpointQR(ctx context.Context, id entity.CheckpointID, designatedUser string) ([]byte, error) {
	checkpoint, err := srv.checkpointRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCheckpointNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCheckpointNotFound, "checkpoint qr")
		}

		return nil, errors.Wrap(err, "failed to find checkpoint")
	}

	designatedUser = strings.TrimSpace(designatedUser)
	key := qrArtifactKey(checkpoint.ID, designatedUser)

	cached, found, err := srv.artifacts.Get(ctx, key)
	if err != nil {
		srv.log(ctx).Warn("Failed to read cached QR code", slog.String("key", key), slog.Any("error", err))
	}
	if found {
		return cached, nil
	}

	png, err := srv.qrService.GenerateCheckpointQR(service.CheckpointQRPayload{
		CheckpointID:   checkpoint.ID,
		DesignatedUser: designatedUser,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	if err := srv.artifacts.Put(ctx, key, qrContentType, png); err != nil {
		srv.log(ctx).Warn("Failed to cache QR code", slog.String("key", key), slog.Any("error", err))
	}

	return png, nil
}

func qrArtifactKey(id entity.CheckpointID, designatedUser string) string {
	name := "open"
	if designatedUser != "" {
		name = "designated-" + url.PathEscape(strings.ToLower(designatedUser))
	}

	return "qr/" + url.PathEscape(id.String()) + "/" + name + ".png"
}
