package impl

import (
	"context"
	"testing"
	"time"

	"patrol/internal/domain/entity"
	"patrol/internal/domain/repository"
	mockRepo "patrol/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dashboardTestNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newDashboardServiceForTest(t *testing.T) (*dashboardService, *mockRepo.MockGuardRepository, *mockRepo.MockCheckpointRepository, *mockRepo.MockScanRepository) {
	guardRepo := mockRepo.NewMockGuardRepository(t)
	checkpointRepo := mockRepo.NewMockCheckpointRepository(t)
	scanRepo := mockRepo.NewMockScanRepository(t)

	srv := NewDashboardService(DashboardServiceParams{
		GuardRepo:      guardRepo,
		CheckpointRepo: checkpointRepo,
		ScanRepo:       scanRepo,
		Config:         newPatrolTestConfig(),
		Logger:         newDiscardLogger(),
	}).(*dashboardService)
	srv.now = fixedClock(dashboardTestNow)

	return srv, guardRepo, checkpointRepo, scanRepo
}

func TestDashboardService_GetStats(t *testing.T) {
	srv, guardRepo, checkpointRepo, scanRepo := newDashboardServiceForTest(t)
	ctx := context.Background()

	guards := []*entity.Guard{testGuard(1, "Alice", "cp-1")}
	checkpoints := []*entity.Checkpoint{testCheckpoint("cp-1", 0, 0, 10)}
	scans := []*entity.Scan{
		{ID: "today", GuardID: 1, CheckpointID: "cp-1", Result: entity.ScanResultPassed, ScannedAt: time.Date(2024, 5, 1, 9, 5, 0, 0, time.UTC)},
		{ID: "yesterday", GuardID: 1, CheckpointID: "cp-1", Result: entity.ScanResultPassed, ScannedAt: time.Date(2024, 4, 30, 0, 10, 0, 0, time.UTC)},
	}

	guardRepo.EXPECT().List(ctx).Return(guards, nil)
	checkpointRepo.EXPECT().List(ctx).Return(checkpoints, nil)
	scanRepo.EXPECT().
		List(ctx, repository.ScanFilter{Since: time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)}).
		Return(scans, nil)
	scanRepo.EXPECT().Count(ctx).Return(int64(42), nil)

	stats, err := srv.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.PatrolsToday)
	assert.Equal(t, 0, stats.MissedPatrols)
	assert.Equal(t, 1, stats.ActiveGuards)
	assert.Equal(t, 1, stats.TotalGuards)
	assert.Equal(t, 1, stats.TotalCheckpoints)
	assert.Equal(t, 42, stats.TotalScans)
	assert.Equal(t, 100.0, stats.CompletionRate)
	assert.Equal(t, 0.0, stats.OnTimeRate)
	assert.Equal(t, 70.0, stats.EfficiencyScore)
	assert.Equal(t, 32700, stats.AvgResponseTimeSeconds)
	assert.Equal(t, 0.0, stats.CompletionRateChange)
	assert.Equal(t, -30.0, stats.EfficiencyScoreChange)
	assert.Equal(t, 32100, stats.AvgResponseTimeChangeSeconds)
}

func TestDashboardService_GetStats_EmptyStore(t *testing.T) {
	srv, guardRepo, checkpointRepo, scanRepo := newDashboardServiceForTest(t)
	ctx := context.Background()

	guardRepo.EXPECT().List(ctx).Return(nil, nil)
	checkpointRepo.EXPECT().List(ctx).Return(nil, nil)
	scanRepo.EXPECT().List(ctx, repository.ScanFilter{Since: time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)}).Return(nil, nil)
	scanRepo.EXPECT().Count(ctx).Return(int64(0), nil)

	stats, err := srv.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, entity.DashboardStats{QualityRate: 100, EfficiencyScore: 20}, *stats)
}

func TestDashboardService_GetStats_RepositoryError(t *testing.T) {
	srv, guardRepo, _, _ := newDashboardServiceForTest(t)
	ctx := context.Background()

	guardRepo.EXPECT().List(ctx).Return(nil, errors.New("connection refused"))

	_, err := srv.GetStats(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list guards")
}

func TestDashboardService_GetTimeline(t *testing.T) {
	srv, guardRepo, checkpointRepo, scanRepo := newDashboardServiceForTest(t)
	ctx := context.Background()

	scans := []*entity.Scan{
		{ID: "s2", GuardID: 1, CheckpointID: "cp-1", ScannedAt: dashboardTestNow.Add(-time.Minute)},
		{ID: "s1", GuardID: 2, CheckpointID: "cp-9", ScannedAt: dashboardTestNow.Add(-time.Hour)},
	}

	scanRepo.EXPECT().List(ctx, repository.ScanFilter{Limit: 20}).Return(scans, nil)
	guardRepo.EXPECT().List(ctx).Return([]*entity.Guard{testGuard(1, "Alice")}, nil)
	checkpointRepo.EXPECT().List(ctx).Return([]*entity.Checkpoint{testCheckpoint("cp-1", 0, 0, 10)}, nil)

	timeline, err := srv.GetTimeline(ctx, 0)

	require.NoError(t, err)
	require.Len(t, timeline, 2)
	assert.Equal(t, "s2", timeline[0].ID)
	assert.Equal(t, "Alice", timeline[0].GuardName)
	assert.Equal(t, "Checkpoint cp-1", timeline[0].CheckpointName)
	assert.Equal(t, "Guard 2", timeline[1].GuardName)
	assert.Equal(t, "cp-9", timeline[1].CheckpointName)
}

func TestDashboardService_GetTimeline_CapsLimit(t *testing.T) {
	srv, guardRepo, checkpointRepo, scanRepo := newDashboardServiceForTest(t)
	ctx := context.Background()

	scanRepo.EXPECT().List(ctx, repository.ScanFilter{Limit: 100}).Return(nil, nil)
	guardRepo.EXPECT().List(ctx).Return(nil, nil)
	checkpointRepo.EXPECT().List(ctx).Return(nil, nil)

	timeline, err := srv.GetTimeline(ctx, 5000)

	require.NoError(t, err)
	assert.Empty(t, timeline)
}

func TestDashboardService_GetGuardPerformance(t *testing.T) {
	srv, guardRepo, _, scanRepo := newDashboardServiceForTest(t)
	ctx := context.Background()

	inactive := false
	guards := []*entity.Guard{
		testGuard(1, "Alice", "cp-1"),
		testGuard(2, "Bob", "cp-1"),
		{ID: 3, Name: "Carol", IsActive: &inactive, AssignedCheckpoints: []entity.CheckpointID{"cp-1"}},
	}
	scans := []*entity.Scan{
		{ID: "s1", GuardID: 2, CheckpointID: "cp-1", Result: entity.ScanResultPassed, ScannedAt: time.Date(2024, 5, 1, 0, 5, 0, 0, time.UTC)},
	}

	guardRepo.EXPECT().List(ctx).Return(guards, nil)
	scanRepo.EXPECT().List(ctx, repository.ScanFilter{}).Return(scans, nil)

	rows, err := srv.GetGuardPerformance(ctx)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, entity.GuardID(2), rows[0].GuardID)
	assert.Equal(t, 100.0, rows[0].Metrics.CompletionRate)
	require.NotNil(t, rows[0].LastScanAt)
	assert.Equal(t, entity.GuardID(1), rows[1].GuardID)
	assert.Nil(t, rows[1].LastScanAt)
}
