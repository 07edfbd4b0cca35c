package service

import (
	"context"
	"time"
)

// ScanRecordedEvent is emitted after a scan has been appended to the log.
type ScanRecordedEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	ScanID         string    `json:"scan_id"`
	GuardID        int64     `json:"guard_id"`
	CheckpointID   string    `json:"checkpoint_id"`
	Result         string    `json:"result"`
	FailureReason  string    `json:"failure_reason,omitempty"`
	DistanceMeters *float64  `json:"distance_meters,omitempty"`
	ScannedAt      time.Time `json:"scanned_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishScanRecorded publishes a scan event for downstream consumers
	PublishScanRecorded(ctx context.Context, event *ScanRecordedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
