package impl

import (
	"context"
	"log/slog"
	"time"

	"patrol/config"
	deliverycontext "patrol/internal/delivery/context"
	"patrol/internal/domain/entity"
	"patrol/internal/domain/patrol"
	"patrol/internal/domain/repository"
	"patrol/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type dashboardService struct {
	guardRepo      repository.GuardRepository
	checkpointRepo repository.CheckpointRepository
	scanRepo       repository.ScanRepository
	policy         patrol.MetricsPolicy
	location       *time.Location
	now            func() time.Time
	logger         *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	GuardRepo      repository.GuardRepository
	CheckpointRepo repository.CheckpointRepository
	ScanRepo       repository.ScanRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	location := time.UTC
	if params.Config != nil {
		location = params.Config.Location()
	}

	return &dashboardService{
		guardRepo:      params.GuardRepo,
		checkpointRepo: params.CheckpointRepo,
		scanRepo:       params.ScanRepo,
		policy:         metricsPolicyFromConfig(params.Config),
		location:       location,
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetStats computes today's headline numbers and the deltas against yesterday.
func (srv *dashboardService) GetStats(ctx context.Context) (*entity.DashboardStats, error) {
	now := srv.now()
	_, yesterday := patrol.DayWindows(now, srv.location)

	guards, err := srv.guardRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guards")
	}

	checkpoints, err := srv.checkpointRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list checkpoints")
	}

	scans, err := srv.scanRepo.List(ctx, repository.ScanFilter{Since: yesterday.Start})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list scans")
	}

	totalScans, err := srv.scanRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count scans")
	}

	stats := srv.policy.BuildDashboardStats(patrol.StatsInput{
		Now:              now,
		Location:         srv.location,
		Guards:           guards,
		TotalCheckpoints: len(checkpoints),
		TotalScans:       int(totalScans),
		Scans:            scans,
	})
	srv.log(ctx).Debug("Dashboard stats computed",
		slog.Int("guards", len(guards)),
		slog.Int("scans", len(scans)),
	)

	return &stats, nil
}

// GetTimeline returns the most recent scans with display names.
func (srv *dashboardService) GetTimeline(ctx context.Context, limit int) ([]entity.TimelineEntry, error) {
	limit = patrol.ClampLimit(limit, patrol.DefaultTimelineLimit, patrol.MaxTimelineLimit)

	scans, err := srv.scanRepo.List(ctx, repository.ScanFilter{Limit: limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list scans")
	}

	guards, err := srv.guardRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guards")
	}

	checkpoints, err := srv.checkpointRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list checkpoints")
	}

	return patrol.Timeline(scans, guards, checkpoints, limit), nil
}

// GetGuardPerformance returns today's metrics for every active guard.
func (srv *dashboardService) GetGuardPerformance(ctx context.Context) ([]entity.GuardPerformance, error) {
	guards, err := srv.guardRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guards")
	}

	scans, err := srv.scanRepo.List(ctx, repository.ScanFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list scans")
	}

	return srv.policy.GuardPerformance(guards, scans, srv.now(), srv.location), nil
}
