package model

import (
	"time"

	"gorm.io/datatypes"
)

// AdminModel is the GORM-specific struct for the 'admins' table.
type AdminModel struct {
	ID           string `gorm:"type:text;primaryKey"`
	Username     string `gorm:"type:text;not null;uniqueIndex"`
	DisplayName  string `gorm:"type:text"`
	PasswordHash string `gorm:"type:text;not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}

// NotificationStateModel is the GORM-specific struct for the 'admin_notification_states' table.
// One row per admin holds the read/ack/delete id sets as jsonb arrays.
type NotificationStateModel struct {
	AdminID    string                      `gorm:"type:text;primaryKey"`
	ReadIDs    datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	AckedIDs   datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	DeletedIDs datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	ResetAt    *time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationStateModel) TableName() string {
	return "admin_notification_states"
}
