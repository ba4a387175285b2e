package entity

import (
	"testing"
	"time"

	errs "github.com/stepexplorer/server/internal/domain/error"
	coremocks "github.com/stepexplorer/server/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStepLog(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid log creation", func(t *testing.T) {
		log, err := NewStepLog("user-1", 2500, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "user-1", log.UserID)
		assert.Equal(t, int64(2500), log.Steps)
		assert.Equal(t, "2025-06-01", log.Date)
		assert.Equal(t, fixedTime, log.CreatedAt)
	})

	t.Run("Empty user ID should return error", func(t *testing.T) {
		log, err := NewStepLog("", 2500, mockTime)

		assert.Nil(t, log)
		assert.Equal(t, errs.ErrInvalidUserID, err)
	})

	t.Run("Negative steps should return error", func(t *testing.T) {
		log, err := NewStepLog("user-1", -1, mockTime)

		assert.Nil(t, log)
		assert.Equal(t, errs.ErrInvalidSteps, err)
	})
}

func TestStepLogDelta(t *testing.T) {
	log := &StepLog{UserID: "user-1", Steps: 1000, Date: "2025-06-01"}

	t.Run("Higher report yields the difference", func(t *testing.T) {
		assert.Equal(t, int64(250), log.Delta(1250))
	})

	t.Run("Equal report yields zero", func(t *testing.T) {
		assert.Zero(t, log.Delta(1000))
	})

	t.Run("Lower report yields zero, never negative", func(t *testing.T) {
		assert.Zero(t, log.Delta(800))
	})
}

func TestSynthesizeUserAsset(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	asset := &Asset{ID: "asset-1", Price: 500, Latitude: 40.7, Longitude: -73.9}

	view := SynthesizeUserAsset("user-1", asset, now)

	assert.Equal(t, "user-1", view.UserID)
	assert.Equal(t, "asset-1", view.AssetID)
	assert.Equal(t, int64(500), view.PurchasePrice)
	assert.Equal(t, now, view.PurchaseDate)
	assert.True(t, view.Synthesized)
}
