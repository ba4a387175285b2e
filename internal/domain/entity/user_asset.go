package entity

import (
	"time"

	errs "github.com/stepexplorer/server/internal/domain/error"
	coreport "github.com/stepexplorer/server/internal/domain/port/core"
)

// UserAsset represents an ownership record: a single purchase of an asset by
// a user. Created exactly once at purchase time and immutable afterwards.
// At most one record exists per (user, asset) pair; the constraint is enforced
// by the atomic purchase operation, not here.
type UserAsset struct {
	ID            string    // UUID of the ownership record
	UserID        string    // Owning user
	AssetID       string    // Purchased asset
	PurchasePrice int64     // Coins debited at purchase time; may differ from the current list price
	PurchaseDate  time.Time // When the purchase completed

	// Synthesized marks a view built from the asset's current price and the
	// current timestamp because the authoritative record was not loaded in
	// this read path. Displayed purchase price/date may not be historical.
	Synthesized bool
}

// NewUserAsset creates a new ownership record with basic validation
func NewUserAsset(id, userID, assetID string, purchasePrice int64, timeProvider coreport.TimeProvider) (*UserAsset, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if assetID == "" {
		return nil, errs.ErrInvalidAssetID
	}
	if purchasePrice < 0 {
		return nil, errs.ErrInvalidPrice
	}

	return &UserAsset{
		ID:            id,
		UserID:        userID,
		AssetID:       assetID,
		PurchasePrice: purchasePrice,
		PurchaseDate:  timeProvider.Now(),
	}, nil
}

// SynthesizeUserAsset builds an ownership view from the asset's current list
// price when the authoritative purchase record is not available in the read
// path. Placeholder provenance, flagged via Synthesized.
func SynthesizeUserAsset(userID string, asset *Asset, now time.Time) *UserAsset {
	return &UserAsset{
		UserID:        userID,
		AssetID:       asset.ID,
		PurchasePrice: asset.Price,
		PurchaseDate:  now,
		Synthesized:   true,
	}
}
