package catalog

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/stepexplorer/server/internal/domain/entity"
	errs "github.com/stepexplorer/server/internal/domain/error"
)

// Portfolio is the reconciled view of a user's holdings against the catalog
type Portfolio struct {
	OwnedAssets     []*entity.UserAsset
	PortfolioSize   int
	TotalCoinsSpent int64
}

// Reconcile cross-references the catalog against the user's owned-asset ids
// and synthesizes ownership views. Pure: identical inputs yield identical
// outputs and nothing is mutated.
//
// Asset ids present in ownedIDs but absent from the catalog are skipped, not
// fatal. Malformed price or coordinates on any catalog asset abort with a
// data-integrity error instead of being silently defaulted.
//
// When records carries the authoritative UserAsset row for an owned asset,
// its purchase price/date are used; otherwise a view is synthesized from the
// asset's current list price and now. Synthesized provenance is flagged on
// the view because the displayed values may not be historical.
func Reconcile(
	userID string,
	assets []*entity.Asset,
	ownedIDs map[string]struct{},
	records map[string]*entity.UserAsset,
	now time.Time,
) (*Portfolio, error) {
	owned := make([]*entity.UserAsset, 0, len(ownedIDs))
	var spent int64

	for _, asset := range assets {
		if asset == nil {
			return nil, errs.NewDataIntegrityError("asset", "", "record")
		}
		if err := asset.Validate(); err != nil {
			return nil, err
		}

		if _, ok := ownedIDs[asset.ID]; !ok {
			continue
		}

		record := records[asset.ID]
		if record == nil {
			record = entity.SynthesizeUserAsset(userID, asset, now)
		}
		owned = append(owned, record)
		spent += record.PurchasePrice
	}

	return &Portfolio{
		OwnedAssets:     owned,
		PortfolioSize:   len(owned),
		TotalCoinsSpent: spent,
	}, nil
}

// pointFromLatLng builds an orb point from latitude/longitude degrees
func pointFromLatLng(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}
