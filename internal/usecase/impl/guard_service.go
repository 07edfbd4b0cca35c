package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "patrol/internal/delivery/context"
	"patrol/internal/domain/entity"
	domainerrors "patrol/internal/domain/errors"
	"patrol/internal/domain/repository"
	"patrol/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type guardService struct {
	txManager repository.TransactionManager
	guardRepo repository.GuardRepository
	now       func() time.Time
	logger    *slog.Logger
}

// GuardServiceParams holds dependencies for GuardService, injected by Fx.
type GuardServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	GuardRepo repository.GuardRepository
	Logger    *slog.Logger
}

// NewGuardService is the constructor for guardService.
func NewGuardService(params GuardServiceParams) usecase.GuardUsecase {
	return &guardService{
		txManager: params.TxManager,
		guardRepo: params.GuardRepo,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *guardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListGuards returns every guard with their assignments.
func (srv *guardService) ListGuards(ctx context.Context) ([]*entity.Guard, error) {
	guards, err := srv.guardRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guards")
	}

	return guards, nil
}

// ReplaceAssignments swaps the assigned set under a row lock so concurrent edits of the same guard serialise.
func (srv *guardService) ReplaceAssignments(ctx context.Context, guardID entity.GuardID, checkpointIDs []entity.CheckpointID) (*entity.Guard, error) {
	assigned := make([]entity.CheckpointID, 0, len(checkpointIDs))
	for _, id := range checkpointIDs {
		id = entity.CheckpointID(strings.TrimSpace(id.String()))
		if id == "" {
			return nil, errors.Wrap(domainerrors.ErrInvalidInput.WithDetails("checkpoint id must not be empty"), "replace assignments")
		}
		assigned = append(assigned, id)
	}

	guard, err := srv.updateGuard(ctx, guardID, func(repoFactory repository.RepositoryFactory, guard *entity.Guard) error {
		for _, id := range assigned {
			if _, err := repoFactory.NewCheckpointRepository().FindByID(ctx, id); err != nil {
				if errors.Is(err, repository.ErrCheckpointNotFound) {
					return errors.Wrap(domainerrors.ErrCheckpointNotFound.WithDetails(id.String()), "replace assignments")
				}

				return errors.Wrap(err, "failed to find checkpoint")
			}
		}

		guard.AssignedCheckpoints = assigned
		pruneResetDates(guard)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Guard assignments replaced",
		slog.String("guardID", guardID.String()),
		slog.Int("checkpoints", len(guard.AssignedCheckpoints)),
	)

	return guard, nil
}

// ResetAssignment stamps a new reset date, so scans before now no longer complete the assignment.
func (srv *guardService) ResetAssignment(ctx context.Context, guardID entity.GuardID, checkpointID entity.CheckpointID) (*entity.Guard, error) {
	now := srv.now()

	guard, err := srv.updateGuard(ctx, guardID, func(_ repository.RepositoryFactory, guard *entity.Guard) error {
		if !guard.IsAssigned(checkpointID) {
			return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("checkpoint is not assigned to this guard"), "reset assignment")
		}
		if guard.CheckpointResetDates == nil {
			guard.CheckpointResetDates = make(map[entity.CheckpointID]time.Time)
		}
		guard.CheckpointResetDates[checkpointID] = now

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Guard assignment reset",
		slog.String("guardID", guardID.String()),
		slog.String("checkpointID", checkpointID.String()),
	)

	return guard, nil
}

// updateGuard loads the guard FOR UPDATE, applies mutate and persists the assignments in one transaction.
func (srv *guardService) updateGuard(
	ctx context.Context,
	guardID entity.GuardID,
	mutate func(repoFactory repository.RepositoryFactory, guard *entity.Guard) error,
) (*entity.Guard, error) {
	var updated *entity.Guard

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		guardRepo := repoFactory.NewGuardRepository()

		guard, err := guardRepo.FindByIDForUpdate(ctx, guardID)
		if err != nil {
			if errors.Is(err, repository.ErrGuardNotFound) {
				return errors.Wrap(domainerrors.ErrGuardNotFound, "guard not found")
			}

			return errors.Wrap(err, "failed to find guard")
		}

		if err := mutate(repoFactory, guard); err != nil {
			return err
		}

		if err := guardRepo.UpdateAssignments(ctx, guard); err != nil {
			return errors.Wrap(err, "failed to update assignments")
		}
		updated = guard

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// pruneResetDates drops reset dates of checkpoints that are no longer assigned.
func pruneResetDates(guard *entity.Guard) {
	for id := range guard.CheckpointResetDates {
		if !guard.IsAssigned(id) {
			delete(guard.CheckpointResetDates, id)
		}
	}
}
