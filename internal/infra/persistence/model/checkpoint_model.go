package model

import (
	"time"
)

// CheckpointModel is the GORM-specific struct for the 'checkpoints' table.
type CheckpointModel struct {
	ID            string   `gorm:"type:text;primaryKey"`
	Name          string   `gorm:"type:text;not null"`
	Location      string   `gorm:"type:text"`
	Description   string   `gorm:"type:text"`
	Latitude      *float64 `gorm:"type:decimal(10,8)"`
	Longitude     *float64 `gorm:"type:decimal(11,8)"`
	AllowedRadius *float64
	GPSAccuracy   *float64 `gorm:"column:gps_accuracy"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CheckpointModel) TableName() string {
	return "checkpoints"
}
