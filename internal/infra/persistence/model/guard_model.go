package model

import (
	"time"

	"gorm.io/datatypes"
)

// GuardModel is the GORM-specific struct for the 'guards' table.
type GuardModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:text;not null"`
	PinHash  string `gorm:"type:text;not null"`
	IsActive *bool  `gorm:"default:true"`

	// AssignedCheckpoints is a jsonb array of checkpoint ids.
	AssignedCheckpoints datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	// CheckpointResetDates is a jsonb object keyed by checkpoint id.
	CheckpointResetDates datatypes.JSONType[map[string]time.Time] `gorm:"type:jsonb;not null;default:'{}'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GuardModel) TableName() string {
	return "guards"
}
