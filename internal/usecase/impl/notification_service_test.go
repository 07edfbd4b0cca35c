package impl

import (
	"context"
	"testing"
	"time"

	"patrol/internal/domain/entity"
	domainerrors "patrol/internal/domain/errors"
	"patrol/internal/domain/repository"
	"patrol/internal/infra/persistence/memory"
	mockRepo "patrol/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var notificationTestNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type notificationServiceMocks struct {
	guardRepo      *mockRepo.MockGuardRepository
	checkpointRepo *mockRepo.MockCheckpointRepository
	scanRepo       *mockRepo.MockScanRepository
	stateRepo      *mockRepo.MockNotificationStateRepository
}

func newNotificationServiceForTest(t *testing.T) (*notificationService, notificationServiceMocks) {
	m := notificationServiceMocks{
		guardRepo:      mockRepo.NewMockGuardRepository(t),
		checkpointRepo: mockRepo.NewMockCheckpointRepository(t),
		scanRepo:       mockRepo.NewMockScanRepository(t),
		stateRepo:      mockRepo.NewMockNotificationStateRepository(t),
	}

	srv := NewNotificationService(NotificationServiceParams{
		GuardRepo:      m.guardRepo,
		CheckpointRepo: m.checkpointRepo,
		ScanRepo:       m.scanRepo,
		StateRepo:      m.stateRepo,
		Config:         newPatrolTestConfig(),
		Logger:         newDiscardLogger(),
	}).(*notificationService)
	srv.now = fixedClock(notificationTestNow)

	return srv, m
}

func TestNotificationService_GetFeed_AppliesAdminState(t *testing.T) {
	srv, m := newNotificationServiceForTest(t)
	ctx := context.Background()

	scans := []*entity.Scan{
		{ID: "s2", GuardID: 1, CheckpointID: "cp-1", Result: entity.ScanResultPassed, ScannedAt: notificationTestNow.Add(-5 * time.Minute)},
		{ID: "s1", GuardID: 1, CheckpointID: "cp-1", Result: entity.ScanResultPassed, ScannedAt: notificationTestNow.Add(-20 * time.Minute)},
	}
	state := entity.NewNotificationState("admin-1")
	state.Apply(entity.NotificationStateUpdate{Reads: []string{"scan-s2"}, Deletes: []string{"scan-s1"}}, notificationTestNow)

	m.guardRepo.EXPECT().List(ctx).Return([]*entity.Guard{testGuard(1, "Alice", "cp-1")}, nil)
	m.checkpointRepo.EXPECT().List(ctx).Return([]*entity.Checkpoint{testCheckpoint("cp-1", 0, 0, 10)}, nil)
	m.scanRepo.EXPECT().List(ctx, repository.ScanFilter{}).Return(scans, nil)
	m.stateRepo.EXPECT().Get(ctx, entity.AdminID("admin-1")).Return(state, nil)

	feed, err := srv.GetFeed(ctx, "admin-1")

	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "scan-s2", feed[0].ID)
	assert.False(t, feed[0].Unread)
	assert.False(t, feed[0].Acknowledged)
	assert.Equal(t, 5, feed[0].TimeAgoMinutes)
	assert.Equal(t, "Alice scanned Checkpoint cp-1", feed[0].Detail)
}

func TestNotificationService_GetFeed_EmptyStore(t *testing.T) {
	srv, m := newNotificationServiceForTest(t)
	ctx := context.Background()

	m.guardRepo.EXPECT().List(ctx).Return(nil, nil)
	m.checkpointRepo.EXPECT().List(ctx).Return(nil, nil)
	m.scanRepo.EXPECT().List(ctx, repository.ScanFilter{}).Return(nil, nil)
	m.stateRepo.EXPECT().Get(ctx, entity.AdminID("admin-1")).Return(entity.NewNotificationState("admin-1"), nil)

	feed, err := srv.GetFeed(ctx, "admin-1")

	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestNotificationService_GetFeed_RequiresAdmin(t *testing.T) {
	srv, _ := newNotificationServiceForTest(t)

	_, err := srv.GetFeed(context.Background(), "")

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestNotificationService_UpdateState(t *testing.T) {
	srv, m := newNotificationServiceForTest(t)
	ctx := context.Background()

	m.stateRepo.EXPECT().
		Update(ctx, entity.AdminID("admin-1"), mock.Anything).
		RunAndReturn(func(_ context.Context, adminID entity.AdminID, fn func(*entity.NotificationState) error) (*entity.NotificationState, error) {
			state := entity.NewNotificationState(adminID)
			if err := fn(state); err != nil {
				return nil, err
			}

			return state, nil
		})

	view, err := srv.UpdateState(ctx, "admin-1", &entity.NotificationStateUpdate{
		Reads:   []string{"scan-a"},
		Deletes: []string{"scan-b"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"scan-a", "scan-b"}, view.Reads)
	assert.Equal(t, []string{"scan-b"}, view.Acks)
	assert.Equal(t, []string{"scan-b"}, view.Deletes)
	assert.Equal(t, notificationTestNow, view.UpdatedAt)
}

func TestNotificationService_UpdateState_ReplayIsIdempotent(t *testing.T) {
	ctx := context.Background()
	srv := NewNotificationService(NotificationServiceParams{
		StateRepo: memory.NewNotificationStateRepository(),
		Config:    newPatrolTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*notificationService)
	srv.now = fixedClock(notificationTestNow)

	update := &entity.NotificationStateUpdate{Reads: []string{"x"}, Acks: []string{"y"}}
	first, err := srv.UpdateState(ctx, "admin-1", update)
	require.NoError(t, err)
	second, err := srv.UpdateState(ctx, "admin-1", update)
	require.NoError(t, err)

	assert.Equal(t, first.Reads, second.Reads)
	assert.Equal(t, first.Acks, second.Acks)

	reset, err := srv.UpdateState(ctx, "admin-1", &entity.NotificationStateUpdate{ResetAll: true})
	require.NoError(t, err)
	assert.Empty(t, reset.Reads)
	assert.Empty(t, reset.Acks)
	require.NotNil(t, reset.ResetAt)
	assert.Equal(t, notificationTestNow, *reset.ResetAt)
}

func TestNotificationService_UpdateState_StoreError(t *testing.T) {
	srv, m := newNotificationServiceForTest(t)
	ctx := context.Background()

	m.stateRepo.EXPECT().Update(ctx, entity.AdminID("admin-1"), mock.Anything).Return(nil, errors.New("locked"))

	_, err := srv.UpdateState(ctx, "admin-1", &entity.NotificationStateUpdate{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update notification state")
}
