package usecase

import (
	"context"

	"patrol/internal/domain/entity"
)

// NotificationUsecase defines the admin notification feed use cases
type NotificationUsecase interface {
	// GetFeed recomputes the notification feed and applies the admin's read/ack/delete state.
	GetFeed(ctx context.Context, adminID entity.AdminID) ([]entity.AdminNotification, error)

	// UpdateState merges a batch of state changes and returns the resulting state.
	UpdateState(ctx context.Context, adminID entity.AdminID, update *entity.NotificationStateUpdate) (*entity.NotificationStateView, error)
}
