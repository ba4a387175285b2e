package model

import (
	"time"
)

// UserProfile represents the database model for user profiles
type UserProfile struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Username    string    `gorm:"size:255"`
	DisplayName string    `gorm:"size:255"`
	Coins       int64     `gorm:"not null;default:0;check:coins >= 0"`
	Steps       int64     `gorm:"not null;default:0"`
	AvatarURL   *string   `gorm:"size:1024"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for UserProfile
func (UserProfile) TableName() string {
	return "user_profiles"
}
