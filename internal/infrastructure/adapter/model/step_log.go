package model

import (
	"time"
)

// StepLog represents the database model for daily step logs.
// The unique (user_id, date) index keeps at most one row per user per day;
// writes go through an upsert on that key.
type StepLog struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"not null;size:36;uniqueIndex:idx_step_logs_user_date"`
	Date      string    `gorm:"not null;size:10;uniqueIndex:idx_step_logs_user_date"`
	Steps     int64     `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`

	// Define relationships
	UserProfile UserProfile `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for StepLog
func (StepLog) TableName() string {
	return "step_logs"
}
