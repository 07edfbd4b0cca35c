package impl

import (
	"context"
	"log/slog"
	"time"

	"patrol/config"
	deliverycontext "patrol/internal/delivery/context"
	"patrol/internal/domain/entity"
	domainerrors "patrol/internal/domain/errors"
	"patrol/internal/domain/patrol"
	"patrol/internal/domain/repository"
	"patrol/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationService struct {
	guardRepo      repository.GuardRepository
	checkpointRepo repository.CheckpointRepository
	scanRepo       repository.ScanRepository
	stateRepo      repository.NotificationStateRepository
	policy         patrol.AlertPolicy
	feedLimit      int
	now            func() time.Time
	logger         *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	GuardRepo      repository.GuardRepository
	CheckpointRepo repository.CheckpointRepository
	ScanRepo       repository.ScanRepository
	StateRepo      repository.NotificationStateRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		guardRepo:      params.GuardRepo,
		checkpointRepo: params.CheckpointRepo,
		scanRepo:       params.ScanRepo,
		stateRepo:      params.StateRepo,
		policy:         alertPolicyFromConfig(params.Config),
		feedLimit:      feedLimitFromConfig(params.Config),
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetFeed recomputes the feed from the full scan history and filters it through the admin's state.
func (srv *notificationService) GetFeed(ctx context.Context, adminID entity.AdminID) ([]entity.AdminNotification, error) {
	if adminID == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "admin id is required")
	}

	guards, err := srv.guardRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guards")
	}

	checkpoints, err := srv.checkpointRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list checkpoints")
	}

	scans, err := srv.scanRepo.List(ctx, repository.ScanFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list scans")
	}

	state, err := srv.stateRepo.Get(ctx, adminID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load notification state")
	}

	now := srv.now()
	feed := patrol.BuildNotifications(patrol.AlertInput{
		Now:         now,
		Guards:      guards,
		Checkpoints: checkpoints,
		Scans:       scans,
	}, srv.policy)

	result := patrol.ApplyNotificationState(feed, state, now, srv.feedLimit)
	srv.log(ctx).Debug("Notification feed built",
		slog.String("adminID", string(adminID)),
		slog.Int("generated", len(feed)),
		slog.Int("returned", len(result)),
	)

	return result, nil
}

// UpdateState merges a batch of read/ack/delete ids, or a full reset, into the admin's state.
// Replaying the same batch leaves the state unchanged.
func (srv *notificationService) UpdateState(ctx context.Context, adminID entity.AdminID, update *entity.NotificationStateUpdate) (*entity.NotificationStateView, error) {
	if adminID == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "admin id is required")
	}
	if update == nil {
		update = &entity.NotificationStateUpdate{}
	}

	now := srv.now()
	state, err := srv.stateRepo.Update(ctx, adminID, func(state *entity.NotificationState) error {
		state.Apply(*update, now)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update notification state")
	}

	srv.log(ctx).Info("Notification state updated",
		slog.String("adminID", string(adminID)),
		slog.Int("reads", len(update.Reads)),
		slog.Int("acks", len(update.Acks)),
		slog.Int("deletes", len(update.Deletes)),
		slog.Bool("resetAll", update.ResetAll),
	)

	view := state.Snapshot()

	return &view, nil
}
