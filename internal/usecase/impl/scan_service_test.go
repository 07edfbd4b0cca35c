package impl

import (
	"context"
	"testing"
	"time"

	"patrol/internal/domain/entity"
	domainerrors "patrol/internal/domain/errors"
	"patrol/internal/domain/patrol"
	"patrol/internal/domain/repository"
	"patrol/internal/domain/service"
	mockRepo "patrol/internal/mocks/repository"
	mockService "patrol/internal/mocks/service"
	"patrol/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type scanServiceMocks struct {
	guardRepo      *mockRepo.MockGuardRepository
	checkpointRepo *mockRepo.MockCheckpointRepository
	scanRepo       *mockRepo.MockScanRepository
	qrService      *mockService.MockQRCodeService
	publisher      *mockService.MockEventPublisher
}

var scanTestNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newScanServiceForTest(t *testing.T) (*scanService, scanServiceMocks) {
	m := scanServiceMocks{
		guardRepo:      mockRepo.NewMockGuardRepository(t),
		checkpointRepo: mockRepo.NewMockCheckpointRepository(t),
		scanRepo:       mockRepo.NewMockScanRepository(t),
		qrService:      mockService.NewMockQRCodeService(t),
		publisher:      mockService.NewMockEventPublisher(t),
	}

	srv := NewScanService(ScanServiceParams{
		GuardRepo:      m.guardRepo,
		CheckpointRepo: m.checkpointRepo,
		ScanRepo:       m.scanRepo,
		QRService:      m.qrService,
		Publisher:      m.publisher,
		Config:         newPatrolTestConfig(),
		Logger:         newDiscardLogger(),
	}).(*scanService)
	srv.now = fixedClock(scanTestNow)

	return srv, m
}

func TestScanService_RecordScan_PassesAtCheckpoint(t *testing.T) {
	srv, m := newScanServiceForTest(t)
	ctx := context.Background()

	guard := testGuard(7, "Alice", "cp-1")
	checkpoint := testCheckpoint("cp-1", 0, 0, 10)

	m.guardRepo.EXPECT().FindByID(ctx, entity.GuardID(7)).Return(guard, nil)
	m.checkpointRepo.EXPECT().FindByID(ctx, entity.CheckpointID("cp-1")).Return(checkpoint, nil)
	m.scanRepo.EXPECT().
		Append(ctx, mock.MatchedBy(func(s *entity.Scan) bool {
			return s.Result == entity.ScanResultPassed &&
				s.FailureReason == nil &&
				s.GuardID == 7 &&
				s.CheckpointID == "cp-1" &&
				s.ScannedAt.Equal(scanTestNow) &&
				s.ID != ""
		})).
		Return(nil)
	m.publisher.EXPECT().
		PublishScanRecorded(ctx, mock.MatchedBy(func(e *service.ScanRecordedEvent) bool {
			return e.GuardID == 7 && e.CheckpointID == "cp-1" && e.Result == "passed"
		})).
		Return(nil)

	got, err := srv.RecordScan(ctx, 7, &usecase.RecordScanInput{
		CheckpointID: "cp-1",
		Latitude:     float(0),
		Longitude:    float(0),
		Accuracy:     float(0),
	})

	require.NoError(t, err)
	assert.True(t, got.Designated)
	assert.Equal(t, "Alice", got.GuardName)
	assert.Equal(t, "Checkpoint cp-1", got.CheckpointName)
	assert.Equal(t, entity.ScanResultPassed, got.Scan.Result)
	assert.Equal(t, "Checkpoint verified", got.Message)
	require.NotNil(t, got.Scan.DistanceMeters)
	assert.InDelta(t, 0, *got.Scan.DistanceMeters, 1e-9)
}

func TestScanService_RecordScan_OutOfRangeIsRecordedAsFailed(t *testing.T) {
	tests := []struct {
		name       string
		accuracy   *float64
		wantResult entity.ScanResult
	}{
		{name: "no accuracy margin", accuracy: float(0), wantResult: entity.ScanResultFailed},
		{name: "accuracy brings guard within radius", accuracy: float(5), wantResult: entity.ScanResultPassed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newScanServiceForTest(t)
			ctx := context.Background()

			m.guardRepo.EXPECT().FindByID(ctx, entity.GuardID(7)).Return(testGuard(7, "Alice", "cp-1"), nil)
			m.checkpointRepo.EXPECT().FindByID(ctx, entity.CheckpointID("cp-1")).Return(testCheckpoint("cp-1", 0, 0, 10), nil)
			m.scanRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.Scan")).Return(nil)
			m.publisher.EXPECT().PublishScanRecorded(ctx, mock.Anything).Return(nil)

			got, err := srv.RecordScan(ctx, 7, &usecase.RecordScanInput{
				CheckpointID: "cp-1",
				Latitude:     float(0.0001),
				Longitude:    float(0),
				Accuracy:     tt.accuracy,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantResult, got.Scan.Result)
			assert.True(t, got.Designated)
			if tt.wantResult == entity.ScanResultFailed {
				assert.Contains(t, got.Scan.Reason(), "exceeds allowed radius of 10m")
				assert.Contains(t, got.Message, "Scan recorded as failed")
			}
		})
	}
}

func TestScanService_RecordScan_NotDesignatedLeavesNoTrace(t *testing.T) {
	srv, m := newScanServiceForTest(t)
	ctx := context.Background()

	m.guardRepo.EXPECT().FindByID(ctx, entity.GuardID(7)).Return(testGuard(7, "Alice", "cp-1"), nil)
	m.checkpointRepo.EXPECT().FindByID(ctx, entity.CheckpointID("cp-1")).Return(testCheckpoint("cp-1", 0, 0, 10), nil)

	got, err := srv.RecordScan(ctx, 7, &usecase.RecordScanInput{
		CheckpointID:   "cp-1",
		DesignatedUser: "bob",
		Latitude:       float(0),
		Longitude:      float(0),
	})

	require.Error(t, err)
	assert.Nil(t, got)

	var notDesignated *domainerrors.NotDesignatedError
	require.True(t, errors.As(err, &notDesignated))
	assert.Equal(t, "bob", notDesignated.DesignatedUser)
	assert.Equal(t, "NOT_DESIGNATED", notDesignated.ErrorCode())
	m.scanRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	m.publisher.AssertNotCalled(t, "PublishScanRecorded", mock.Anything, mock.Anything)
}

func TestScanService_RecordScan_DesignationIsCaseInsensitive(t *testing.T) {
	srv, m := newScanServiceForTest(t)
	ctx := context.Background()

	m.guardRepo.EXPECT().FindByID(ctx, entity.GuardID(7)).Return(testGuard(7, "Alice", "cp-1"), nil)
	m.checkpointRepo.EXPECT().FindByID(ctx, entity.CheckpointID("cp-1")).Return(testCheckpoint("cp-1", 0, 0, 10), nil)
	m.scanRepo.EXPECT().Append(ctx, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishScanRecorded(ctx, mock.Anything).Return(nil)

	got, err := srv.RecordScan(ctx, 7, &usecase.RecordScanInput{
		CheckpointID:   "cp-1",
		DesignatedUser: "  alice ",
		Latitude:       float(0),
		Longitude:      float(0),
	})

	require.NoError(t, err)
	assert.True(t, got.Designated)
}

func TestScanService_RecordScan_NotFound(t *testing.T) {
	t.Run("guard", func(t *testing.T) {
		srv, m := newScanServiceForTest(t)
		ctx := context.Background()

		m.guardRepo.EXPECT().FindByID(ctx, entity.GuardID(99)).Return(nil, repository.ErrGuardNotFound)

		_, err := srv.RecordScan(ctx, 99, &usecase.RecordScanInput{CheckpointID: "cp-1"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrGuardNotFound))
	})

	t.Run("checkpoint", func(t *testing.T) {
		srv, m := newScanServiceForTest(t)
		ctx := context.Background()

		m.guardRepo.EXPECT().FindByID(ctx, entity.GuardID(7)).Return(testGuard(7, "Alice"), nil)
		m.checkpointRepo.EXPECT().FindByID(ctx, entity.CheckpointID("missing")).Return(nil, repository.ErrCheckpointNotFound)

		_, err := srv.RecordScan(ctx, 7, &usecase.RecordScanInput{CheckpointID: "missing"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrCheckpointNotFound))
	})
}

func TestScanService_RecordScan_InactiveGuard(t *testing.T) {
	srv, m := newScanServiceForTest(t)
	ctx := context.Background()

	inactive := false
	guard := testGuard(7, "Alice", "cp-1")
	guard.IsActive = &inactive

	m.guardRepo.EXPECT().FindByID(ctx, entity.GuardID(7)).Return(guard, nil)
	m.checkpointRepo.EXPECT().FindByID(ctx, entity.CheckpointID("cp-1")).Return(testCheckpoint("cp-1", 0, 0, 10), nil)

	_, err := srv.RecordScan(ctx, 7, &usecase.RecordScanInput{CheckpointID: "cp-1"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrGuardInactive))
}

func TestScanService_RecordScan_UnassignedCheckpoint(t *testing.T) {
	srv, m := newScanServiceForTest(t)
	ctx := context.Background()

	m.guardRepo.EXPECT().FindByID(ctx, entity.GuardID(7)).Return(testGuard(7, "Alice", "cp-2"), nil)
	m.checkpointRepo.EXPECT().FindByID(ctx, entity.CheckpointID("cp-1")).Return(testCheckpoint("cp-1", 0, 0, 10), nil)
	m.scanRepo.EXPECT().Append(ctx, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishScanRecorded(ctx, mock.Anything).Return(nil)

	got, err := srv.RecordScan(ctx, 7, &usecase.RecordScanInput{
		CheckpointID: "cp-1",
		Latitude:     float(0),
		Longitude:    float(0),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ScanResultFailed, got.Scan.Result)
	assert.Equal(t, patrol.ReasonNotAssigned, got.Scan.Reason())
}

func TestScanService_RecordScan_LegacyCheckpointAlwaysPasses(t *testing.T) {
	srv, m := newScanServiceForTest(t)
	ctx := context.Background()

	legacy := &entity.Checkpoint{ID: "cp-1", Name: "Gate"}
	m.guardRepo.EXPECT().FindByID(ctx, entity.GuardID(7)).Return(testGuard(7, "Alice", "cp-1"), nil)
	m.checkpointRepo.EXPECT().FindByID(ctx, entity.CheckpointID("cp-1")).Return(legacy, nil)
	m.scanRepo.EXPECT().Append(ctx, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishScanRecorded(ctx, mock.Anything).Return(nil)

	got, err := srv.RecordScan(ctx, 7, &usecase.RecordScanInput{CheckpointID: "cp-1"})

	require.NoError(t, err)
	assert.Equal(t, entity.ScanResultPassed, got.Scan.Result)
	assert.Nil(t, got.Scan.DistanceMeters)
}

func TestScanService_RecordScan_FromQRPayload(t *testing.T) {
	srv, m := newScanServiceForTest(t)
	ctx := context.Background()

	m.qrService.EXPECT().ParseCheckpointQR("payload").Return(&service.CheckpointQRPayload{
		CheckpointID:   "cp-1",
		DesignatedUser: "Bob",
	}, nil)
	m.guardRepo.EXPECT().FindByID(ctx, entity.GuardID(7)).Return(testGuard(7, "Alice", "cp-1"), nil)
	m.checkpointRepo.EXPECT().FindByID(ctx, entity.CheckpointID("cp-1")).Return(testCheckpoint("cp-1", 0, 0, 10), nil)

	_, err := srv.RecordScan(ctx, 7, &usecase.RecordScanInput{QRData: "payload"})

	var notDesignated *domainerrors.NotDesignatedError
	require.True(t, errors.As(err, &notDesignated))
	assert.Equal(t, "Bob", notDesignated.DesignatedUser)
}

func TestScanService_RecordScan_InvalidInput(t *testing.T) {
	t.Run("missing checkpoint", func(t *testing.T) {
		srv, _ := newScanServiceForTest(t)

		_, err := srv.RecordScan(context.Background(), 7, &usecase.RecordScanInput{})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	})

	t.Run("undecodable QR", func(t *testing.T) {
		srv, m := newScanServiceForTest(t)
		m.qrService.EXPECT().ParseCheckpointQR("garbage").Return(nil, errors.New("bad json"))

		_, err := srv.RecordScan(context.Background(), 7, &usecase.RecordScanInput{QRData: "garbage"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidQRPayload))
	})

	t.Run("QR for a different checkpoint", func(t *testing.T) {
		srv, m := newScanServiceForTest(t)
		m.qrService.EXPECT().ParseCheckpointQR("payload").Return(&service.CheckpointQRPayload{CheckpointID: "cp-2"}, nil)

		_, err := srv.RecordScan(context.Background(), 7, &usecase.RecordScanInput{CheckpointID: "cp-1", QRData: "payload"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidQRPayload))
	})
}

func TestScanService_RecordScan_PublishFailureDoesNotFailScan(t *testing.T) {
	srv, m := newScanServiceForTest(t)
	ctx := context.Background()

	m.guardRepo.EXPECT().FindByID(ctx, entity.GuardID(7)).Return(testGuard(7, "Alice", "cp-1"), nil)
	m.checkpointRepo.EXPECT().FindByID(ctx, entity.CheckpointID("cp-1")).Return(testCheckpoint("cp-1", 0, 0, 10), nil)
	m.scanRepo.EXPECT().Append(ctx, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishScanRecorded(ctx, mock.Anything).Return(errors.New("broker down"))

	got, err := srv.RecordScan(ctx, 7, &usecase.RecordScanInput{
		CheckpointID: "cp-1",
		Latitude:     float(0),
		Longitude:    float(0),
	})

	require.NoError(t, err)
	assert.NotNil(t, got.Scan)
}

func TestScanService_RecordScan_AppendError(t *testing.T) {
	srv, m := newScanServiceForTest(t)
	ctx := context.Background()

	m.guardRepo.EXPECT().FindByID(ctx, entity.GuardID(7)).Return(testGuard(7, "Alice", "cp-1"), nil)
	m.checkpointRepo.EXPECT().FindByID(ctx, entity.CheckpointID("cp-1")).Return(testCheckpoint("cp-1", 0, 0, 10), nil)
	m.scanRepo.EXPECT().Append(ctx, mock.Anything).Return(errors.New("db down"))

	_, err := srv.RecordScan(ctx, 7, &usecase.RecordScanInput{CheckpointID: "cp-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to append scan")
}

func TestScanService_ListScans_ClampsLimit(t *testing.T) {
	srv, m := newScanServiceForTest(t)
	ctx := context.Background()

	m.scanRepo.EXPECT().
		List(ctx, repository.ScanFilter{GuardID: 7, Limit: maxScanListLimit}).
		Return([]*entity.Scan{{ID: "s1"}}, nil)

	scans, err := srv.ListScans(ctx, repository.ScanFilter{GuardID: 7, Limit: 10000})

	require.NoError(t, err)
	assert.Len(t, scans, 1)
}
