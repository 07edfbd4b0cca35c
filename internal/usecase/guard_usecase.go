package usecase

import (
	"context"

	"patrol/internal/domain/entity"
)

// GuardUsecase defines the guard assignment use cases
type GuardUsecase interface {
	ListGuards(ctx context.Context) ([]*entity.Guard, error)

	// ReplaceAssignments sets the guard's assigned checkpoints. Reset dates of removed checkpoints are dropped.
	ReplaceAssignments(ctx context.Context, guardID entity.GuardID, checkpointIDs []entity.CheckpointID) (*entity.Guard, error)

	// ResetAssignment reassigns a checkpoint, so the assignment counts as pending again from now on.
	ResetAssignment(ctx context.Context, guardID entity.GuardID, checkpointID entity.CheckpointID) (*entity.Guard, error)
}
