package impl

import (
	"context"
	"testing"
	"time"

	"patrol/internal/domain/entity"
	domainerrors "patrol/internal/domain/errors"
	"patrol/internal/domain/repository"
	mockRepo "patrol/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var guardTestNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newGuardServiceForTest(t *testing.T) (*guardService, *mockRepo.MockTransactionManager, *mockRepo.MockGuardRepository) {
	txManager := mockRepo.NewMockTransactionManager(t)
	guardRepo := mockRepo.NewMockGuardRepository(t)

	srv := NewGuardService(GuardServiceParams{
		TxManager: txManager,
		GuardRepo: guardRepo,
		Logger:    newDiscardLogger(),
	}).(*guardService)
	srv.now = fixedClock(guardTestNow)

	return srv, txManager, guardRepo
}

func TestGuardService_ListGuards(t *testing.T) {
	srv, _, guardRepo := newGuardServiceForTest(t)
	ctx := context.Background()

	guardRepo.EXPECT().List(ctx).Return([]*entity.Guard{testGuard(1, "Alice")}, nil)

	guards, err := srv.ListGuards(ctx)

	require.NoError(t, err)
	assert.Len(t, guards, 1)
}

func TestGuardService_ReplaceAssignments_DropsStaleResetDates(t *testing.T) {
	srv, txManager, _ := newGuardServiceForTest(t)
	ctx := context.Background()

	guard := testGuard(1, "Alice", "cp-1", "cp-2")
	guard.CheckpointResetDates = map[entity.CheckpointID]time.Time{
		"cp-1": guardTestNow.Add(-time.Hour),
		"cp-2": guardTestNow.Add(-2 * time.Hour),
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGuardRepo := mockRepo.NewMockGuardRepository(t)
			mockCheckpointRepo := mockRepo.NewMockCheckpointRepository(t)

			mockFactory.EXPECT().NewGuardRepository().Return(mockGuardRepo)
			mockFactory.EXPECT().NewCheckpointRepository().Return(mockCheckpointRepo)

			mockGuardRepo.EXPECT().FindByIDForUpdate(ctx, entity.GuardID(1)).Return(guard, nil)
			mockCheckpointRepo.EXPECT().FindByID(ctx, entity.CheckpointID("cp-2")).Return(testCheckpoint("cp-2", 0, 0, 10), nil)
			mockCheckpointRepo.EXPECT().FindByID(ctx, entity.CheckpointID("cp-3")).Return(testCheckpoint("cp-3", 0, 0, 10), nil)
			mockGuardRepo.EXPECT().
				UpdateAssignments(ctx, mock.MatchedBy(func(g *entity.Guard) bool {
					_, hasCP1 := g.CheckpointResetDates["cp-1"]
					_, hasCP2 := g.CheckpointResetDates["cp-2"]

					return !hasCP1 && hasCP2 && len(g.AssignedCheckpoints) == 2
				})).
				Return(nil)

			return fn(mockFactory)
		})

	updated, err := srv.ReplaceAssignments(ctx, 1, []entity.CheckpointID{"cp-2", " cp-3 "})

	require.NoError(t, err)
	assert.Equal(t, []entity.CheckpointID{"cp-2", "cp-3"}, updated.AssignedCheckpoints)
}

func TestGuardService_ReplaceAssignments_UnknownCheckpoint(t *testing.T) {
	srv, txManager, _ := newGuardServiceForTest(t)
	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGuardRepo := mockRepo.NewMockGuardRepository(t)
			mockCheckpointRepo := mockRepo.NewMockCheckpointRepository(t)

			mockFactory.EXPECT().NewGuardRepository().Return(mockGuardRepo)
			mockFactory.EXPECT().NewCheckpointRepository().Return(mockCheckpointRepo)

			mockGuardRepo.EXPECT().FindByIDForUpdate(ctx, entity.GuardID(1)).Return(testGuard(1, "Alice"), nil)
			mockCheckpointRepo.EXPECT().FindByID(ctx, entity.CheckpointID("ghost")).Return(nil, repository.ErrCheckpointNotFound)

			return fn(mockFactory)
		})

	_, err := srv.ReplaceAssignments(ctx, 1, []entity.CheckpointID{"ghost"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCheckpointNotFound))
}

func TestGuardService_ReplaceAssignments_RejectsBlankID(t *testing.T) {
	srv, _, _ := newGuardServiceForTest(t)

	_, err := srv.ReplaceAssignments(context.Background(), 1, []entity.CheckpointID{"  "})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestGuardService_ResetAssignment(t *testing.T) {
	srv, txManager, _ := newGuardServiceForTest(t)
	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGuardRepo := mockRepo.NewMockGuardRepository(t)

			mockFactory.EXPECT().NewGuardRepository().Return(mockGuardRepo)
			mockGuardRepo.EXPECT().FindByIDForUpdate(ctx, entity.GuardID(1)).Return(testGuard(1, "Alice", "cp-1"), nil)
			mockGuardRepo.EXPECT().UpdateAssignments(ctx, mock.AnythingOfType("*entity.Guard")).Return(nil)

			return fn(mockFactory)
		})

	updated, err := srv.ResetAssignment(ctx, 1, "cp-1")

	require.NoError(t, err)
	reset, ok := updated.ResetDate("cp-1")
	require.True(t, ok)
	assert.Equal(t, guardTestNow, reset)
}

func TestGuardService_ResetAssignment_Errors(t *testing.T) {
	tests := []struct {
		name    string
		guard   *entity.Guard
		findErr error
		wantErr error
	}{
		{name: "guard not found", findErr: repository.ErrGuardNotFound, wantErr: domainerrors.ErrGuardNotFound},
		{name: "checkpoint not assigned", guard: testGuard(1, "Alice", "cp-2"), wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, txManager, _ := newGuardServiceForTest(t)
			ctx := context.Background()

			txManager.EXPECT().
				Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
				RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
					mockFactory := mockRepo.NewMockRepositoryFactory(t)
					mockGuardRepo := mockRepo.NewMockGuardRepository(t)

					mockFactory.EXPECT().NewGuardRepository().Return(mockGuardRepo)
					mockGuardRepo.EXPECT().FindByIDForUpdate(ctx, entity.GuardID(1)).Return(tt.guard, tt.findErr)

					return fn(mockFactory)
				})

			_, err := srv.ResetAssignment(ctx, 1, "cp-1")

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}
