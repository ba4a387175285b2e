package model

import (
	"time"
)

// City represents the database model for cities grouping assets on the map
type City struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Name        string    `gorm:"not null;size:255"`
	CountryCode string    `gorm:"not null;size:2;index"`
	Latitude    float64   `gorm:"not null"`
	Longitude   float64   `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for City
func (City) TableName() string {
	return "cities"
}
