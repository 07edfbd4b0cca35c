// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// ScanResult is the verdict stored with a scan.
type ScanResult string

const (
	// ScanResultPassed marks a scan that satisfied every rule.
	ScanResultPassed ScanResult = "passed"
	// ScanResultFailed marks a scan that was recorded but violated a rule.
	ScanResultFailed ScanResult = "failed"
)

// Scan is one recorded checkpoint scan. Scans are immutable once written.
type Scan struct {
	ID             string       `json:"id"`
	GuardID        GuardID      `json:"guardId"`
	CheckpointID   CheckpointID `json:"checkpointId"`
	ScannedAt      time.Time    `json:"scannedAt"`
	RecordedAt     time.Time    `json:"recordedAt"`
	Result         ScanResult   `json:"result"`
	FailureReason  *string      `json:"failureReason"`
	Latitude       *float64     `json:"latitude,omitempty"`
	Longitude      *float64     `json:"longitude,omitempty"`
	Accuracy       *float64     `json:"accuracy,omitempty"`
	DistanceMeters *float64     `json:"distanceMeters,omitempty"`
	RequiredRadius *float64     `json:"requiredRadius,omitempty"`
	Notes          string       `json:"notes,omitempty"`
}

// Succeeded reports whether the scan counts as a successful patrol. Anything not explicitly failed
// counts, matching how legacy rows without a result were treated.
func (s *Scan) Succeeded() bool {
	return s.Result != ScanResultFailed
}

// Reason returns the failure reason or an empty string.
func (s *Scan) Reason() string {
	if s.FailureReason == nil {
		return ""
	}

	return *s.FailureReason
}

// Key returns the assignment key the scan belongs to.
func (s *Scan) Key() AssignmentKey {
	return AssignmentKey{GuardID: s.GuardID, CheckpointID: s.CheckpointID}
}
