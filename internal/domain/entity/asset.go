package entity

import (
	"time"

	errs "github.com/stepexplorer/server/internal/domain/error"
	coreport "github.com/stepexplorer/server/internal/domain/port/core"
	"github.com/paulmach/orb"
)

// AssetType represents the kind of purchasable asset
type AssetType string

// Asset types
const (
	AssetTypeLandmark AssetType = "landmark"
	AssetTypeBuilding AssetType = "building"
)

// Asset represents a purchasable, geolocated virtual property.
// Ownership subfields (OwnerUserID, OwnerAvatarURL) are recomputed on every
// catalog fetch, never stored redundantly.
type Asset struct {
	ID          string    // UUID of the asset
	Name        string    // Display name
	Description string    // Optional description
	Price       int64     // List price in coins, always >= 0
	Latitude    float64   // Degrees, [-90, 90]
	Longitude   float64   // Degrees, [-180, 180]
	CityID      string    // Owning city reference
	Type        AssetType // landmark or building
	Color       string    // Visual metadata
	ImageURL    string    // Visual metadata
	CreatedAt   time.Time // When the asset was seeded

	// Derived per-fetch: present only when some user owns the asset
	OwnerUserID    string
	OwnerAvatarURL *string
}

// NewAsset creates a new asset with validation of price and coordinates
func NewAsset(id, name string, price int64, lat, lng float64, cityID string, assetType AssetType, timeProvider coreport.TimeProvider) (*Asset, error) {
	if id == "" {
		return nil, errs.ErrInvalidAssetID
	}
	if price < 0 {
		return nil, errs.ErrInvalidPrice
	}
	if !ValidCoordinates(lat, lng) {
		return nil, errs.ErrInvalidCoordinates
	}
	if !isValidAssetType(assetType) {
		return nil, errs.NewDataIntegrityError("asset", id, "type")
	}

	return &Asset{
		ID:        id,
		Name:      name,
		Price:     price,
		Latitude:  lat,
		Longitude: lng,
		CityID:    cityID,
		Type:      assetType,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// Validate checks the invariants of a fetched asset record.
// Malformed price or coordinates are a data-integrity error to be surfaced,
// not silently defaulted.
func (a *Asset) Validate() error {
	if a.ID == "" {
		return errs.NewDataIntegrityError("asset", a.ID, "id")
	}
	if a.Price < 0 {
		return errs.NewDataIntegrityError("asset", a.ID, "price")
	}
	if !ValidCoordinates(a.Latitude, a.Longitude) {
		return errs.NewDataIntegrityError("asset", a.ID, "coordinates")
	}
	return nil
}

// Location returns the asset position as an orb point (lng, lat order)
func (a *Asset) Location() orb.Point {
	return orb.Point{a.Longitude, a.Latitude}
}

// IsOwned reports whether some user currently owns the asset
func (a *Asset) IsOwned() bool {
	return a.OwnerUserID != ""
}

// ValidCoordinates reports whether lat/lng fall in valid geographic ranges
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// isValidAssetType validates if the asset type is allowed
func isValidAssetType(t AssetType) bool {
	return t == AssetTypeLandmark || t == AssetTypeBuilding
}
