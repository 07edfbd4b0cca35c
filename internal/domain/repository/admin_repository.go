package repository

import (
	"context"
	"errors"

	"patrol/internal/domain/entity"
)

// ErrAdminNotFound is returned when no admin matches the lookup.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository looks up dashboard operators.
type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*entity.Admin, error)
}
