package repository

import (
	"context"

	"patrol/internal/domain/entity"
)

// NotificationStateRepository stores the per-admin read/ack/delete bookkeeping.
type NotificationStateRepository interface {
	// Get returns the admin's state, or an empty state when none was stored yet.
	Get(ctx context.Context, adminID entity.AdminID) (*entity.NotificationState, error)

	// Put replaces the admin's state.
	Put(ctx context.Context, state *entity.NotificationState) error

	// Update loads the admin's state, passes it to fn and stores the result atomically.
	// Concurrent updates for the same admin are serialised so no batch is lost.
	Update(ctx context.Context, adminID entity.AdminID, fn func(state *entity.NotificationState) error) (*entity.NotificationState, error)
}
