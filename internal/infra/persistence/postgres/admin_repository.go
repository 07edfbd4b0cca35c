package postgres

import (
	"context"

	"patrol/internal/domain/entity"
	"patrol/internal/domain/repository"
	"patrol/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (repo *adminRepository) FindByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	var adminM model.AdminModel
	if err := repo.db.WithContext(ctx).Where("username = ?", username).First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by username")
	}

	return &entity.Admin{
		ID:           entity.AdminID(adminM.ID),
		Username:     adminM.Username,
		DisplayName:  adminM.DisplayName,
		PasswordHash: adminM.PasswordHash,
		CreatedAt:    adminM.CreatedAt,
	}, nil
}
