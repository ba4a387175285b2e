package entity

import (
	"testing"
	"time"

	errs "github.com/stepexplorer/server/internal/domain/error"
	coremocks "github.com/stepexplorer/server/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAsset(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid asset creation", func(t *testing.T) {
		asset, err := NewAsset("asset-1", "Empire State Building", 500, 40.7484, -73.9857, "city-nyc", AssetTypeLandmark, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "asset-1", asset.ID)
		assert.Equal(t, int64(500), asset.Price)
		assert.Equal(t, AssetTypeLandmark, asset.Type)
		assert.Equal(t, fixedTime, asset.CreatedAt)
		assert.False(t, asset.IsOwned())
	})

	t.Run("Empty ID should return error", func(t *testing.T) {
		asset, err := NewAsset("", "x", 500, 0, 0, "city-nyc", AssetTypeBuilding, mockTime)

		assert.Nil(t, asset)
		assert.Equal(t, errs.ErrInvalidAssetID, err)
	})

	t.Run("Negative price should return error", func(t *testing.T) {
		asset, err := NewAsset("asset-1", "x", -1, 0, 0, "city-nyc", AssetTypeBuilding, mockTime)

		assert.Nil(t, asset)
		assert.Equal(t, errs.ErrInvalidPrice, err)
	})

	t.Run("Out-of-range coordinates should return error", func(t *testing.T) {
		asset, err := NewAsset("asset-1", "x", 100, 91, 0, "city-nyc", AssetTypeBuilding, mockTime)

		assert.Nil(t, asset)
		assert.Equal(t, errs.ErrInvalidCoordinates, err)
	})

	t.Run("Unknown asset type should return error", func(t *testing.T) {
		asset, err := NewAsset("asset-1", "x", 100, 0, 0, "city-nyc", AssetType("castle"), mockTime)

		assert.Nil(t, asset)
		assert.True(t, errs.IsDataIntegrityError(err))
	})
}

func TestAssetValidate(t *testing.T) {
	t.Run("Valid record passes", func(t *testing.T) {
		asset := &Asset{ID: "asset-1", Price: 100, Latitude: 40.7, Longitude: -73.9}
		assert.NoError(t, asset.Validate())
	})

	t.Run("Corrupt records are surfaced, not defaulted", func(t *testing.T) {
		testCases := []struct {
			name  string
			asset *Asset
		}{
			{"missing id", &Asset{Price: 100}},
			{"negative price", &Asset{ID: "asset-1", Price: -5}},
			{"latitude out of range", &Asset{ID: "asset-1", Price: 100, Latitude: -91}},
			{"longitude out of range", &Asset{ID: "asset-1", Price: 100, Longitude: 181}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				assert.True(t, errs.IsDataIntegrityError(tc.asset.Validate()))
			})
		}
	})
}

func TestAssetLocation(t *testing.T) {
	asset := &Asset{ID: "asset-1", Latitude: 40.7484, Longitude: -73.9857}
	point := asset.Location()

	// orb points are (lng, lat)
	assert.Equal(t, -73.9857, point.Lon())
	assert.Equal(t, 40.7484, point.Lat())
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(0, 0))
	assert.True(t, ValidCoordinates(90, 180))
	assert.True(t, ValidCoordinates(-90, -180))
	assert.False(t, ValidCoordinates(90.1, 0))
	assert.False(t, ValidCoordinates(0, -180.1))
}
