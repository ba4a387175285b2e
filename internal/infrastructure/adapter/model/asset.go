package model

import (
	"time"
)

// Asset represents the database model for purchasable assets
type Asset struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Name        string    `gorm:"not null;size:255"`
	Description string    `gorm:"type:text"`
	Price       int64     `gorm:"not null;check:price >= 0"`
	Latitude    float64   `gorm:"not null"`
	Longitude   float64   `gorm:"not null"`
	CityID      string    `gorm:"size:36;index"`
	Type        string    `gorm:"not null;size:50"`
	Color       string    `gorm:"size:50"`
	ImageURL    string    `gorm:"size:1024"`
	CreatedAt   time.Time `gorm:"not null"`

	// Define relationships
	City City `gorm:"foreignKey:CityID;references:ID"`
}

// TableName specifies the table name for Asset
func (Asset) TableName() string {
	return "assets"
}
