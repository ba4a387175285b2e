package model

import (
	"time"
)

// UserAsset represents the database model for ownership records.
// The unique (user_id, asset_id) index is the authoritative guard against
// double purchases.
type UserAsset struct {
	ID            string    `gorm:"primaryKey;size:36"`
	UserID        string    `gorm:"not null;size:36;uniqueIndex:idx_user_assets_user_asset"`
	AssetID       string    `gorm:"not null;size:36;uniqueIndex:idx_user_assets_user_asset"`
	PurchasePrice int64     `gorm:"not null"`
	PurchaseDate  time.Time `gorm:"not null"`

	// Define relationships
	Asset       Asset       `gorm:"foreignKey:AssetID;references:ID"`
	UserProfile UserProfile `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for UserAsset
func (UserAsset) TableName() string {
	return "user_assets"
}
