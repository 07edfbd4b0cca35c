package usecase

import (
	"context"

	"patrol/internal/domain/entity"
)

// DashboardUsecase defines the dashboard read-model use cases
type DashboardUsecase interface {
	GetStats(ctx context.Context) (*entity.DashboardStats, error)
	GetTimeline(ctx context.Context, limit int) ([]entity.TimelineEntry, error)
	GetGuardPerformance(ctx context.Context) ([]entity.GuardPerformance, error)
}
