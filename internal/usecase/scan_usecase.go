// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"patrol/internal/domain/entity"
	"patrol/internal/domain/repository"
)

// RecordScanInput is what a guard's device submits for one checkpoint scan.
// Either CheckpointID or QRData identifies the checkpoint; a decoded QR payload may also carry the designated user.
type RecordScanInput struct {
	CheckpointID   entity.CheckpointID `json:"checkpointId"`
	QRData         string              `json:"qrData,omitempty"`
	DesignatedUser string              `json:"designatedUser,omitempty"`
	Latitude       *float64            `json:"latitude,omitempty"`
	Longitude      *float64            `json:"longitude,omitempty"`
	Accuracy       *float64            `json:"accuracy,omitempty"`
	Notes          string              `json:"notes,omitempty"`
}

// RecordedScan is the persisted scan enriched for the guard's device.
type RecordedScan struct {
	Scan           *entity.Scan `json:"scan"`
	GuardName      string       `json:"guardName"`
	CheckpointName string       `json:"checkpointName"`
	Message        string       `json:"message"`
	Designated     bool         `json:"designated"`
}

// ScanUsecase defines the scan recording and scan log use cases
type ScanUsecase interface {
	// RecordScan verifies and appends one scan for the guard.
	RecordScan(ctx context.Context, guardID entity.GuardID, input *RecordScanInput) (*RecordedScan, error)

	// ListScans returns the scan log, newest first.
	ListScans(ctx context.Context, filter repository.ScanFilter) ([]*entity.Scan, error)
}
