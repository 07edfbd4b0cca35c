// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"patrol/internal/domain/entity"
	domainerrors "patrol/internal/domain/errors"
	"patrol/internal/domain/repository"
	"patrol/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// guardRepository implements the domain.GuardRepository interface using GORM.
type guardRepository struct {
	db *gorm.DB
}

// NewGuardRepository is the constructor for guardRepository.
func NewGuardRepository(db *gorm.DB) repository.GuardRepository {
	return &guardRepository{db: db}
}

// FindByID retrieves a single guard by id.
func (repo *guardRepository) FindByID(ctx context.Context, id entity.GuardID) (*entity.Guard, error) {
	return repo.find(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a guard with a row lock. It must run inside a transaction.
func (repo *guardRepository) FindByIDForUpdate(ctx context.Context, id entity.GuardID) (*entity.Guard, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (repo *guardRepository) find(db *gorm.DB, id entity.GuardID) (*entity.Guard, error) {
	var guardM model.GuardModel
	if err := db.Where("id = ?", int64(id)).First(&guardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGuardNotFound
		}

		return nil, errors.Wrap(err, "failed to find guard by id")
	}

	return toGuardDomain(&guardM), nil
}

// List returns every guard ordered by id.
func (repo *guardRepository) List(ctx context.Context) ([]*entity.Guard, error) {
	var guardMs []*model.GuardModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&guardMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list guards")
	}

	guards := make([]*entity.Guard, 0, len(guardMs))
	for _, m := range guardMs {
		guards = append(guards, toGuardDomain(m))
	}

	return guards, nil
}

// UpdateAssignments writes only the assignment columns so concurrent profile edits are not clobbered.
func (repo *guardRepository) UpdateAssignments(ctx context.Context, guard *entity.Guard) error {
	guardM := fromGuardDomain(guard)
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.GuardModel{}).
		Where("id = ?", guardM.ID).
		Updates(map[string]any{
			"assigned_checkpoints":   guardM.AssignedCheckpoints,
			"checkpoint_reset_dates": guardM.CheckpointResetDates,
			"updated_at":             now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update guard assignments")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGuardNotFound
	}

	guard.UpdatedAt = now

	return nil
}

// --- Mapper Functions ---

func toGuardDomain(data *model.GuardModel) *entity.Guard {
	if data == nil {
		return nil
	}

	assigned := make([]entity.CheckpointID, 0, len(data.AssignedCheckpoints))
	for _, id := range data.AssignedCheckpoints {
		assigned = append(assigned, entity.CheckpointID(id))
	}

	resets := make(map[entity.CheckpointID]time.Time)
	for id, t := range data.CheckpointResetDates.Data() {
		resets[entity.CheckpointID(id)] = t
	}

	return &entity.Guard{
		ID:                   entity.GuardID(data.ID),
		Name:                 data.Name,
		IsActive:             data.IsActive,
		PinHash:              data.PinHash,
		AssignedCheckpoints:  assigned,
		CheckpointResetDates: resets,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func fromGuardDomain(data *entity.Guard) *model.GuardModel {
	if data == nil {
		return nil
	}

	assigned := make([]string, 0, len(data.AssignedCheckpoints))
	for _, id := range data.Assignments() {
		assigned = append(assigned, id.String())
	}

	resets := make(map[string]time.Time, len(data.CheckpointResetDates))
	for id, t := range data.CheckpointResetDates {
		if !t.IsZero() {
			resets[id.String()] = t
		}
	}

	return &model.GuardModel{
		ID:                   int64(data.ID),
		Name:                 data.Name,
		PinHash:              data.PinHash,
		IsActive:             data.IsActive,
		AssignedCheckpoints:  datatypes.NewJSONSlice(assigned),
		CheckpointResetDates: datatypes.NewJSONType(resets),
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
