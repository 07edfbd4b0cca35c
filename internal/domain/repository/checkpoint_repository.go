package repository

import (
	"context"
	"errors"

	"patrol/internal/domain/entity"
)

// ErrCheckpointNotFound is returned when a checkpoint does not exist.
var ErrCheckpointNotFound = errors.New("checkpoint not found")

// CheckpointRepository defines the persistence operations for checkpoints.
type CheckpointRepository interface {
	FindByID(ctx context.Context, id entity.CheckpointID) (*entity.Checkpoint, error)
	List(ctx context.Context) ([]*entity.Checkpoint, error)
	Create(ctx context.Context, checkpoint *entity.Checkpoint) error
}
