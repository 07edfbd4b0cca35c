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

// notificationStateRepository keeps one jsonb row per admin. Update serialises writers for the
// same admin with SELECT ... FOR UPDATE.
type notificationStateRepository struct {
	db *gorm.DB
}

// NewNotificationStateRepository is the constructor for the postgres-backed notification state store.
func NewNotificationStateRepository(db *gorm.DB) repository.NotificationStateRepository {
	return &notificationStateRepository{db: db}
}

func (repo *notificationStateRepository) Get(ctx context.Context, adminID entity.AdminID) (*entity.NotificationState, error) {
	return loadNotificationState(repo.db.WithContext(ctx), adminID)
}

func (repo *notificationStateRepository) Put(ctx context.Context, state *entity.NotificationState) error {
	return saveNotificationState(repo.db.WithContext(ctx), state)
}

func (repo *notificationStateRepository) Update(
	ctx context.Context,
	adminID entity.AdminID,
	fn func(state *entity.NotificationState) error,
) (*entity.NotificationState, error) {
	var updated *entity.NotificationState

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Make sure a row exists so the lock below has something to hold.
		seed := &model.NotificationStateModel{AdminID: string(adminID), UpdatedAt: time.Now()}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(seed).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to seed notification state")
		}

		state, err := loadNotificationState(tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), adminID)
		if err != nil {
			return err
		}
		if err := fn(state); err != nil {
			return err
		}
		if err := saveNotificationState(tx, state); err != nil {
			return err
		}
		updated = state

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func loadNotificationState(db *gorm.DB, adminID entity.AdminID) (*entity.NotificationState, error) {
	var stateM model.NotificationStateModel
	if err := db.Where("admin_id = ?", string(adminID)).First(&stateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.NewNotificationState(adminID), nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load notification state")
	}

	return toNotificationStateDomain(&stateM), nil
}

func saveNotificationState(db *gorm.DB, state *entity.NotificationState) error {
	stateM := fromNotificationStateDomain(state)
	if err := db.Save(stateM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save notification state")
	}

	return nil
}

func toNotificationStateDomain(data *model.NotificationStateModel) *entity.NotificationState {
	state := entity.NewNotificationState(entity.AdminID(data.AdminID))
	state.Read = entity.IDSet(data.ReadIDs)
	state.Acked = entity.IDSet(data.AckedIDs)
	state.Deleted = entity.IDSet(data.DeletedIDs)
	state.ResetAt = data.ResetAt
	state.UpdatedAt = data.UpdatedAt

	return state
}

func fromNotificationStateDomain(data *entity.NotificationState) *model.NotificationStateModel {
	return &model.NotificationStateModel{
		AdminID:    string(data.AdminID),
		ReadIDs:    datatypes.NewJSONSlice(entity.SortedIDs(data.Read)),
		AckedIDs:   datatypes.NewJSONSlice(entity.SortedIDs(data.Acked)),
		DeletedIDs: datatypes.NewJSONSlice(entity.SortedIDs(data.Deleted)),
		ResetAt:    data.ResetAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
