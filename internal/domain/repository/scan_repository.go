package repository

import (
	"context"
	"time"

	"patrol/internal/domain/entity"
)

// ScanFilter narrows a scan listing. Zero values mean "no constraint".
type ScanFilter struct {
	GuardID      entity.GuardID
	CheckpointID entity.CheckpointID
	Since        time.Time
	Until        time.Time
	Limit        int
}

// ScanRepository is the append-only scan log.
type ScanRepository interface {
	// Append stores a new scan. Scans are never updated afterwards.
	Append(ctx context.Context, scan *entity.Scan) error

	// List returns scans matching the filter, newest first.
	List(ctx context.Context, filter ScanFilter) ([]*entity.Scan, error)

	// Count returns the total number of stored scans.
	Count(ctx context.Context) (int64, error)
}
