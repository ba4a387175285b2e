package catalog

import (
	"testing"
	"time"

	"github.com/stepexplorer/server/internal/domain/entity"
	errs "github.com/stepexplorer/server/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	validAssets := []*entity.Asset{
		{ID: "asset-1", Name: "Empire State Building", Price: 500, Latitude: 40.7484, Longitude: -73.9857, Type: entity.AssetTypeLandmark},
		{ID: "asset-2", Name: "Flatiron Building", Price: 300, Latitude: 40.7411, Longitude: -73.9897, Type: entity.AssetTypeBuilding},
		{ID: "asset-3", Name: "Chrysler Building", Price: 450, Latitude: 40.7516, Longitude: -73.9755, Type: entity.AssetTypeBuilding},
	}

	t.Run("Authoritative records win over synthesis", func(t *testing.T) {
		ownedIDs := map[string]struct{}{"asset-1": {}, "asset-2": {}}
		records := map[string]*entity.UserAsset{
			"asset-1": {ID: "ua-1", UserID: "user-1", AssetID: "asset-1", PurchasePrice: 400},
		}

		portfolio, err := Reconcile("user-1", validAssets, ownedIDs, records, now)

		require.NoError(t, err)
		assert.Equal(t, 2, portfolio.PortfolioSize)
		// asset-1 keeps its historical price, asset-2 is synthesized at list price
		assert.Equal(t, int64(400+300), portfolio.TotalCoinsSpent)

		byAsset := map[string]*entity.UserAsset{}
		for _, ua := range portfolio.OwnedAssets {
			byAsset[ua.AssetID] = ua
		}
		assert.False(t, byAsset["asset-1"].Synthesized)
		assert.True(t, byAsset["asset-2"].Synthesized)
		assert.Equal(t, now, byAsset["asset-2"].PurchaseDate)
	})

	t.Run("Owned id missing from catalog is skipped", func(t *testing.T) {
		ownedIDs := map[string]struct{}{"asset-1": {}, "ghost-asset": {}}

		portfolio, err := Reconcile("user-1", validAssets, ownedIDs, nil, now)

		require.NoError(t, err)
		assert.Equal(t, 1, portfolio.PortfolioSize)
		assert.Equal(t, "asset-1", portfolio.OwnedAssets[0].AssetID)
	})

	t.Run("Empty owned set yields empty portfolio", func(t *testing.T) {
		portfolio, err := Reconcile("user-1", validAssets, nil, nil, now)

		require.NoError(t, err)
		assert.Zero(t, portfolio.PortfolioSize)
		assert.Zero(t, portfolio.TotalCoinsSpent)
		assert.Empty(t, portfolio.OwnedAssets)
	})

	t.Run("Negative price aborts with data integrity error", func(t *testing.T) {
		corrupt := []*entity.Asset{
			{ID: "asset-1", Price: -10, Latitude: 40.7484, Longitude: -73.9857, Type: entity.AssetTypeLandmark},
		}

		portfolio, err := Reconcile("user-1", corrupt, map[string]struct{}{"asset-1": {}}, nil, now)

		assert.Nil(t, portfolio)
		assert.True(t, errs.IsDataIntegrityError(err))
	})

	t.Run("Out-of-range coordinates abort with data integrity error", func(t *testing.T) {
		corrupt := []*entity.Asset{
			{ID: "asset-1", Price: 100, Latitude: 95, Longitude: 0, Type: entity.AssetTypeLandmark},
		}

		portfolio, err := Reconcile("user-1", corrupt, nil, nil, now)

		assert.Nil(t, portfolio)
		assert.True(t, errs.IsDataIntegrityError(err))
	})

	t.Run("Nil asset record aborts", func(t *testing.T) {
		portfolio, err := Reconcile("user-1", []*entity.Asset{nil}, nil, nil, now)

		assert.Nil(t, portfolio)
		assert.True(t, errs.IsDataIntegrityError(err))
	})

	t.Run("Identical inputs yield identical outputs", func(t *testing.T) {
		ownedIDs := map[string]struct{}{"asset-2": {}, "asset-3": {}}

		first, err := Reconcile("user-1", validAssets, ownedIDs, nil, now)
		require.NoError(t, err)
		second, err := Reconcile("user-1", validAssets, ownedIDs, nil, now)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
