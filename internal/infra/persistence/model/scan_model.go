package model

import (
	"time"

	"github.com/google/uuid"
)

// ScanModel is the GORM-specific struct for the 'scans' table.
// Rows are append-only.
type ScanModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	GuardID        int64     `gorm:"not null;index:idx_scans_guard_checkpoint,priority:1"`
	CheckpointID   string    `gorm:"type:text;not null;index:idx_scans_guard_checkpoint,priority:2"`
	ScannedAt      time.Time `gorm:"not null;index"`
	RecordedAt     time.Time `gorm:"not null"`
	Result         string    `gorm:"type:text;not null"`
	FailureReason  *string   `gorm:"type:text"`
	Latitude       *float64
	Longitude      *float64
	Accuracy       *float64
	DistanceMeters *float64
	RequiredRadius *float64
	Notes          string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (ScanModel) TableName() string {
	return "scans"
}
