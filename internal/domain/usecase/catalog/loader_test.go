package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stepexplorer/server/internal/domain/auth"
	"github.com/stepexplorer/server/internal/domain/entity"
	errs "github.com/stepexplorer/server/internal/domain/error"
	coremocks "github.com/stepexplorer/server/mocks/port/core"
	persistencemocks "github.com/stepexplorer/server/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	ctx := context.Background()
	sess := auth.NewSession("user-1", "walker")

	t.Run("Successful catalog load", func(t *testing.T) {
		// Setup mocks
		mockAssets := persistencemocks.NewMockAssetRepository(t)
		mockUserAssets := persistencemocks.NewMockUserAssetRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		assets := []*entity.Asset{
			{ID: "asset-1", Name: "Empire State Building", Price: 500, Latitude: 40.7484, Longitude: -73.9857, Type: entity.AssetTypeLandmark},
			{ID: "asset-2", Name: "Flatiron Building", Price: 300, Latitude: 40.7411, Longitude: -73.9897, Type: entity.AssetTypeBuilding},
		}
		records := []*entity.UserAsset{
			{ID: "ua-1", UserID: "user-1", AssetID: "asset-2", PurchasePrice: 250},
		}

		// Setup expectations
		mockAssets.EXPECT().ListCatalog(mock.Anything).Return(assets, nil).Once()
		mockUserAssets.EXPECT().ListAssetIDsByUser(mock.Anything, "user-1").Return([]string{"asset-2"}, nil).Once()
		mockUserAssets.EXPECT().ListByUser(mock.Anything, "user-1").Return(records, nil).Once()
		mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

		loader := NewLoader(mockAssets, mockUserAssets, mockLogger)

		// Execute
		view, err := loader.LoadCatalog(ctx, sess)

		// Assertions
		require.NoError(t, err)
		require.NotNil(t, view)
		assert.Len(t, view.AllAssets, 2)
		assert.Contains(t, view.OwnedAssetIDs, "asset-2")
		assert.NotContains(t, view.OwnedAssetIDs, "asset-1")
		assert.Equal(t, int64(250), view.OwnedRecords["asset-2"].PurchasePrice)
	})

	t.Run("Asset read failure aborts the load", func(t *testing.T) {
		mockAssets := persistencemocks.NewMockAssetRepository(t)
		mockUserAssets := persistencemocks.NewMockUserAssetRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		databaseError := errors.New("database connection error")
		mockAssets.EXPECT().ListCatalog(mock.Anything).Return(nil, databaseError).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		loader := NewLoader(mockAssets, mockUserAssets, mockLogger)

		view, err := loader.LoadCatalog(ctx, sess)

		assert.Error(t, err)
		assert.Nil(t, view)
		assert.Equal(t, databaseError, err)
	})

	t.Run("Owned id read failure aborts the load", func(t *testing.T) {
		mockAssets := persistencemocks.NewMockAssetRepository(t)
		mockUserAssets := persistencemocks.NewMockUserAssetRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		databaseError := errors.New("database connection error")
		mockAssets.EXPECT().ListCatalog(mock.Anything).Return([]*entity.Asset{}, nil).Once()
		mockUserAssets.EXPECT().ListAssetIDsByUser(mock.Anything, "user-1").Return(nil, databaseError).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		loader := NewLoader(mockAssets, mockUserAssets, mockLogger)

		view, err := loader.LoadCatalog(ctx, sess)

		assert.Error(t, err)
		assert.Nil(t, view)
	})

	t.Run("Ownership record read failure aborts the load", func(t *testing.T) {
		mockAssets := persistencemocks.NewMockAssetRepository(t)
		mockUserAssets := persistencemocks.NewMockUserAssetRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		databaseError := errors.New("database connection error")
		mockAssets.EXPECT().ListCatalog(mock.Anything).Return([]*entity.Asset{}, nil).Once()
		mockUserAssets.EXPECT().ListAssetIDsByUser(mock.Anything, "user-1").Return([]string{}, nil).Once()
		mockUserAssets.EXPECT().ListByUser(mock.Anything, "user-1").Return(nil, databaseError).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		loader := NewLoader(mockAssets, mockUserAssets, mockLogger)

		view, err := loader.LoadCatalog(ctx, sess)

		assert.Error(t, err)
		assert.Nil(t, view)
	})

	t.Run("Owned id without a record stays in the owned set", func(t *testing.T) {
		mockAssets := persistencemocks.NewMockAssetRepository(t)
		mockUserAssets := persistencemocks.NewMockUserAssetRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		assets := []*entity.Asset{
			{ID: "asset-1", Name: "Empire State Building", Price: 500, Latitude: 40.7484, Longitude: -73.9857, Type: entity.AssetTypeLandmark},
		}
		mockAssets.EXPECT().ListCatalog(mock.Anything).Return(assets, nil).Once()
		mockUserAssets.EXPECT().ListAssetIDsByUser(mock.Anything, "user-1").Return([]string{"asset-1"}, nil).Once()
		mockUserAssets.EXPECT().ListByUser(mock.Anything, "user-1").Return(nil, nil).Once()
		mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

		loader := NewLoader(mockAssets, mockUserAssets, mockLogger)

		view, err := loader.LoadCatalog(ctx, sess)

		require.NoError(t, err)
		assert.Contains(t, view.OwnedAssetIDs, "asset-1")
		assert.NotContains(t, view.OwnedRecords, "asset-1")
	})

	t.Run("Missing session is rejected", func(t *testing.T) {
		mockAssets := persistencemocks.NewMockAssetRepository(t)
		mockUserAssets := persistencemocks.NewMockUserAssetRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		loader := NewLoader(mockAssets, mockUserAssets, mockLogger)

		view, err := loader.LoadCatalog(ctx, nil)

		assert.Nil(t, view)
		assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
	})

	t.Run("User with no holdings gets empty owned set", func(t *testing.T) {
		mockAssets := persistencemocks.NewMockAssetRepository(t)
		mockUserAssets := persistencemocks.NewMockUserAssetRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		assets := []*entity.Asset{
			{ID: "asset-1", Name: "Empire State Building", Price: 500, Latitude: 40.7484, Longitude: -73.9857, Type: entity.AssetTypeLandmark},
		}
		mockAssets.EXPECT().ListCatalog(mock.Anything).Return(assets, nil).Once()
		mockUserAssets.EXPECT().ListAssetIDsByUser(mock.Anything, "user-1").Return(nil, nil).Once()
		mockUserAssets.EXPECT().ListByUser(mock.Anything, "user-1").Return(nil, nil).Once()
		mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

		loader := NewLoader(mockAssets, mockUserAssets, mockLogger)

		view, err := loader.LoadCatalog(ctx, sess)

		require.NoError(t, err)
		assert.Empty(t, view.OwnedAssetIDs)
		assert.Empty(t, view.OwnedRecords)
	})
}

func TestNearby(t *testing.T) {
	ctx := context.Background()
	sess := auth.NewSession("user-1", "walker")

	// Times Square and two assets: one on the spot, one across the country
	const centerLat, centerLng = 40.7580, -73.9855

	assets := []*entity.Asset{
		{ID: "close", Name: "TKTS Steps", Price: 100, Latitude: 40.7580, Longitude: -73.9855, Type: entity.AssetTypeLandmark},
		{ID: "far", Name: "Griffith Observatory", Price: 100, Latitude: 34.1184, Longitude: -118.3004, Type: entity.AssetTypeLandmark},
	}

	t.Run("Filters assets outside the radius", func(t *testing.T) {
		mockAssets := persistencemocks.NewMockAssetRepository(t)
		mockUserAssets := persistencemocks.NewMockUserAssetRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockAssets.EXPECT().ListCatalog(mock.Anything).Return(assets, nil).Once()
		mockUserAssets.EXPECT().ListAssetIDsByUser(mock.Anything, "user-1").Return(nil, nil).Once()
		mockUserAssets.EXPECT().ListByUser(mock.Anything, "user-1").Return(nil, nil).Once()
		mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

		loader := NewLoader(mockAssets, mockUserAssets, mockLogger)

		nearby, err := loader.Nearby(ctx, sess, centerLat, centerLng, 500)

		require.NoError(t, err)
		require.Len(t, nearby, 1)
		assert.Equal(t, "close", nearby[0].ID)
	})

	t.Run("Large radius includes everything", func(t *testing.T) {
		mockAssets := persistencemocks.NewMockAssetRepository(t)
		mockUserAssets := persistencemocks.NewMockUserAssetRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockAssets.EXPECT().ListCatalog(mock.Anything).Return(assets, nil).Once()
		mockUserAssets.EXPECT().ListAssetIDsByUser(mock.Anything, "user-1").Return(nil, nil).Once()
		mockUserAssets.EXPECT().ListByUser(mock.Anything, "user-1").Return(nil, nil).Once()
		mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

		loader := NewLoader(mockAssets, mockUserAssets, mockLogger)

		nearby, err := loader.Nearby(ctx, sess, centerLat, centerLng, 10_000_000)

		require.NoError(t, err)
		assert.Len(t, nearby, 2)
	})

	t.Run("Invalid coordinates are rejected", func(t *testing.T) {
		mockAssets := persistencemocks.NewMockAssetRepository(t)
		mockUserAssets := persistencemocks.NewMockUserAssetRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		loader := NewLoader(mockAssets, mockUserAssets, mockLogger)

		nearby, err := loader.Nearby(ctx, sess, 91, 0, 500)

		assert.Nil(t, nearby)
		assert.ErrorIs(t, err, errs.ErrInvalidCoordinates)
	})

	t.Run("Missing session is rejected", func(t *testing.T) {
		mockAssets := persistencemocks.NewMockAssetRepository(t)
		mockUserAssets := persistencemocks.NewMockUserAssetRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		loader := NewLoader(mockAssets, mockUserAssets, mockLogger)

		nearby, err := loader.Nearby(ctx, nil, centerLat, centerLng, 500)

		assert.Nil(t, nearby)
		assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
	})
}
