package impl

import (
	"io"
	"log/slog"
	"time"

	"patrol/config"
	"patrol/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPatrolTestConfig() *config.Config {
	return &config.Config{
		Patrol: &config.PatrolConfig{
			Timezone:            "UTC",
			DefaultRadiusMeters: 30,
			OnTimeSLA:           15 * time.Minute,
			EnforceAssignment:   true,
		},
		Notification: &config.NotificationConfig{
			StateStore: "memory",
			FeedLimit:  25,
		},
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func float(v float64) *float64 {
	return &v
}

func testGuard(id entity.GuardID, name string, assigned ...entity.CheckpointID) *entity.Guard {
	return &entity.Guard{
		ID:                  id,
		Name:                name,
		AssignedCheckpoints: assigned,
	}
}

func testCheckpoint(id entity.CheckpointID, lat, lng, radius float64) *entity.Checkpoint {
	return &entity.Checkpoint{
		ID:            id,
		Name:          "Checkpoint " + id.String(),
		Latitude:      &lat,
		Longitude:     &lng,
		AllowedRadius: &radius,
	}
}
