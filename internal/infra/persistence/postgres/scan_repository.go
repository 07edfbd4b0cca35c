package postgres

import (
	"context"

	"patrol/internal/domain/entity"
	domainerrors "patrol/internal/domain/errors"
	"patrol/internal/domain/repository"
	"patrol/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type scanRepository struct {
	db *gorm.DB
}

// NewScanRepository is the constructor for scanRepository.
func NewScanRepository(db *gorm.DB) repository.ScanRepository {
	return &scanRepository{db: db}
}

// Append inserts a scan row. The id is generated by the caller.
func (repo *scanRepository) Append(ctx context.Context, scan *entity.Scan) error {
	scanM, err := fromScanDomain(scan)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(scanM).Error; err != nil {
		if classifyViolation(err) == violationForeignKey {
			return domainerrors.ErrValidationFailed.WithDetails("scan references an unknown guard or checkpoint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append scan")
	}

	return nil
}

// List returns scans matching the filter, newest first.
func (repo *scanRepository) List(ctx context.Context, filter repository.ScanFilter) ([]*entity.Scan, error) {
	db := repo.db.WithContext(ctx).Model(&model.ScanModel{})
	if filter.GuardID != 0 {
		db = db.Where("guard_id = ?", int64(filter.GuardID))
	}
	if filter.CheckpointID != "" {
		db = db.Where("checkpoint_id = ?", filter.CheckpointID.String())
	}
	if !filter.Since.IsZero() {
		db = db.Where("scanned_at >= ?", filter.Since)
	}
	if !filter.Until.IsZero() {
		db = db.Where("scanned_at < ?", filter.Until)
	}
	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}

	var scanMs []*model.ScanModel
	if err := db.Order("scanned_at DESC").Order("id").Find(&scanMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list scans")
	}

	scans := make([]*entity.Scan, 0, len(scanMs))
	for _, m := range scanMs {
		scans = append(scans, toScanDomain(m))
	}

	return scans, nil
}

// Count returns the number of stored scans.
func (repo *scanRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.ScanModel{}).Count(&total).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count scans")
	}

	return total, nil
}

func toScanDomain(data *model.ScanModel) *entity.Scan {
	if data == nil {
		return nil
	}

	return &entity.Scan{
		ID:             data.ID.String(),
		GuardID:        entity.GuardID(data.GuardID),
		CheckpointID:   entity.CheckpointID(data.CheckpointID),
		ScannedAt:      data.ScannedAt,
		RecordedAt:     data.RecordedAt,
		Result:         entity.ScanResult(data.Result),
		FailureReason:  data.FailureReason,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Accuracy:       data.Accuracy,
		DistanceMeters: data.DistanceMeters,
		RequiredRadius: data.RequiredRadius,
		Notes:          data.Notes,
	}
}

func fromScanDomain(data *entity.Scan) (*model.ScanModel, error) {
	id, err := uuid.Parse(data.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid scan id %q", data.ID)
	}

	return &model.ScanModel{
		ID:             id,
		GuardID:        int64(data.GuardID),
		CheckpointID:   data.CheckpointID.String(),
		ScannedAt:      data.ScannedAt,
		RecordedAt:     data.RecordedAt,
		Result:         string(data.Result),
		FailureReason:  data.FailureReason,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Accuracy:       data.Accuracy,
		DistanceMeters: data.DistanceMeters,
		RequiredRadius: data.RequiredRadius,
		Notes:          data.Notes,
	}, nil
}
