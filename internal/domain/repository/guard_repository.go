// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"patrol/internal/domain/entity"
)

// ErrGuardNotFound is returned when a guard does not exist.
var ErrGuardNotFound = errors.New("guard not found")

// GuardRepository defines the persistence operations for guards and their assignments.
type GuardRepository interface {
	// FindByID retrieves a single guard by id.
	FindByID(ctx context.Context, id entity.GuardID) (*entity.Guard, error)

	// FindByIDForUpdate retrieves a guard and locks its row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id entity.GuardID) (*entity.Guard, error)

	// List returns every guard ordered by id.
	List(ctx context.Context) ([]*entity.Guard, error)

	// UpdateAssignments persists the assigned checkpoint set and reset dates of a guard.
	UpdateAssignments(ctx context.Context, guard *entity.Guard) error
}
