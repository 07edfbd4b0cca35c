package postgres

import (
	"context"

	"patrol/internal/domain/entity"
	domainerrors "patrol/internal/domain/errors"
	"patrol/internal/domain/repository"
	"patrol/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type checkpointRepository struct {
	db *gorm.DB
}

// NewCheckpointRepository is the constructor for checkpointRepository.
func NewCheckpointRepository(db *gorm.DB) repository.CheckpointRepository {
	return &checkpointRepository{db: db}
}

func (repo *checkpointRepository) FindByID(ctx context.Context, id entity.CheckpointID) (*entity.Checkpoint, error) {
	var checkpointM model.CheckpointModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id.String()).First(&checkpointM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCheckpointNotFound
		}

		return nil, errors.Wrap(err, "failed to find checkpoint by id")
	}

	return toCheckpointDomain(&checkpointM), nil
}

func (repo *checkpointRepository) List(ctx context.Context) ([]*entity.Checkpoint, error) {
	var checkpointMs []*model.CheckpointModel
	if err := repo.db.WithContext(ctx).Order("name, id").Find(&checkpointMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list checkpoints")
	}

	checkpoints := make([]*entity.Checkpoint, 0, len(checkpointMs))
	for _, m := range checkpointMs {
		checkpoints = append(checkpoints, toCheckpointDomain(m))
	}

	return checkpoints, nil
}

func (repo *checkpointRepository) Create(ctx context.Context, checkpoint *entity.Checkpoint) error {
	checkpointM := fromCheckpointDomain(checkpoint)

	if err := repo.db.WithContext(ctx).Create(checkpointM).Error; err != nil {
		switch classifyViolation(err) {
		case violationUnique:
			return domainerrors.ErrValidationFailed.WithDetails("checkpoint id already exists")
		case violationCheck:
			return domainerrors.ErrInvalidRadius
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create checkpoint")
		}
	}

	checkpoint.CreatedAt = checkpointM.CreatedAt
	checkpoint.UpdatedAt = checkpointM.UpdatedAt

	return nil
}

func toCheckpointDomain(data *model.CheckpointModel) *entity.Checkpoint {
	if data == nil {
		return nil
	}

	return &entity.Checkpoint{
		ID:            entity.CheckpointID(data.ID),
		Name:          data.Name,
		Location:      data.Location,
		Description:   data.Description,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		AllowedRadius: data.AllowedRadius,
		GPSAccuracy:   data.GPSAccuracy,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromCheckpointDomain(data *entity.Checkpoint) *model.CheckpointModel {
	if data == nil {
		return nil
	}

	return &model.CheckpointModel{
		ID:            data.ID.String(),
		Name:          data.Name,
		Location:      data.Location,
		Description:   data.Description,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		AllowedRadius: data.AllowedRadius,
		GPSAccuracy:   data.GPSAccuracy,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
