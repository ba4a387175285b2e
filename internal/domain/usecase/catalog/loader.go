package catalog

import (
	"context"

	"github.com/paulmach/orb/geo"
	"github.com/stepexplorer/server/internal/domain/auth"
	"github.com/stepexplorer/server/internal/domain/entity"
	errs "github.com/stepexplorer/server/internal/domain/error"
	coreport "github.com/stepexplorer/server/internal/domain/port/core"
	"github.com/stepexplorer/server/internal/domain/port/persistence"
)

// CatalogView is the result of a full catalog load: every asset with its
// derived owner metadata, plus the calling user's owned-asset id set and
// authoritative ownership records.
type CatalogView struct {
	AllAssets     []*entity.Asset
	OwnedAssetIDs map[string]struct{}
	OwnedRecords  map[string]*entity.UserAsset // keyed by asset ID
}

// Loader fetches the purchasable-asset catalog together with per-asset
// ownership metadata. Stateless: a failed load leaves nothing mutated, so the
// caller decides whether to keep stale data or show an error state.
type Loader struct {
	assetRepo     persistence.AssetRepository
	userAssetRepo persistence.UserAssetRepository
	logger        coreport.Logger
}

// NewLoader creates a new catalog loader
func NewLoader(
	assetRepo persistence.AssetRepository,
	userAssetRepo persistence.UserAssetRepository,
	logger coreport.Logger,
) *Loader {
	return &Loader{
		assetRepo:     assetRepo,
		userAssetRepo: userAssetRepo,
		logger:        logger,
	}
}

// LoadCatalog issues three independent reads: the full asset catalog with
// owner joins, the id projection of the session user's ownership rows, and
// the full ownership records. The projection is the authoritative owned set;
// the records only supply purchase provenance, and the reconciler tolerates
// an owned id whose record is absent. Any failure aborts the whole load.
func (l *Loader) LoadCatalog(ctx context.Context, sess *auth.Session) (*CatalogView, error) {
	if err := sess.Validate(); err != nil {
		return nil, err
	}

	assets, err := l.assetRepo.ListCatalog(ctx)
	if err != nil {
		l.logger.Error("Failed to load asset catalog", map[string]any{
			"user_id": sess.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	ownedAssetIDs, err := l.userAssetRepo.ListAssetIDsByUser(ctx, sess.UserID)
	if err != nil {
		l.logger.Error("Failed to load owned asset ids", map[string]any{
			"user_id": sess.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	records, err := l.userAssetRepo.ListByUser(ctx, sess.UserID)
	if err != nil {
		l.logger.Error("Failed to load ownership records", map[string]any{
			"user_id": sess.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	ownedIDs := make(map[string]struct{}, len(ownedAssetIDs))
	for _, assetID := range ownedAssetIDs {
		ownedIDs[assetID] = struct{}{}
	}
	ownedRecords := make(map[string]*entity.UserAsset, len(records))
	for _, record := range records {
		ownedRecords[record.AssetID] = record
	}

	l.logger.Debug("Catalog loaded", map[string]any{
		"user_id":     sess.UserID,
		"asset_count": len(assets),
		"owned_count": len(ownedIDs),
	})

	return &CatalogView{
		AllAssets:     assets,
		OwnedAssetIDs: ownedIDs,
		OwnedRecords:  ownedRecords,
	}, nil
}

// Nearby filters the catalog to assets within radiusMeters of the given
// position. Backed by the full catalog load; distance is geodesic.
func (l *Loader) Nearby(ctx context.Context, sess *auth.Session, lat, lng, radiusMeters float64) ([]*entity.Asset, error) {
	if err := sess.Validate(); err != nil {
		return nil, err
	}
	if !entity.ValidCoordinates(lat, lng) {
		return nil, errs.ErrInvalidCoordinates
	}

	view, err := l.LoadCatalog(ctx, sess)
	if err != nil {
		return nil, err
	}

	center := pointFromLatLng(lat, lng)
	nearby := make([]*entity.Asset, 0, len(view.AllAssets))
	for _, asset := range view.AllAssets {
		if geo.Distance(center, asset.Location()) <= radiusMeters {
			nearby = append(nearby, asset)
		}
	}

	l.logger.Debug("Nearby assets resolved", map[string]any{
		"user_id":       sess.UserID,
		"radius_meters": radiusMeters,
		"count":         len(nearby),
	})

	return nearby, nil
}
