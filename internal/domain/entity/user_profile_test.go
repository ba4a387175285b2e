package entity

import (
	"testing"
	"time"

	errs "github.com/stepexplorer/server/internal/domain/error"
	coremocks "github.com/stepexplorer/server/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserProfile(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid profile creation", func(t *testing.T) {
		profile, err := NewUserProfile("user-1", "walker", 1000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "user-1", profile.ID)
		assert.Equal(t, "walker", profile.Username)
		assert.Equal(t, int64(1000), profile.Coins())
		assert.Equal(t, fixedTime, profile.CreatedAt)
		assert.Equal(t, fixedTime, profile.UpdatedAt)
	})

	t.Run("Empty ID should return error", func(t *testing.T) {
		profile, err := NewUserProfile("", "walker", 1000, mockTime)

		assert.Nil(t, profile)
		assert.Equal(t, errs.ErrInvalidUserID, err)
	})

	t.Run("Negative starting balance should return error", func(t *testing.T) {
		profile, err := NewUserProfile("user-1", "walker", -1, mockTime)

		assert.Nil(t, profile)
		assert.Error(t, err)
	})
}

func TestUserProfileBalance(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("CanAfford boundaries", func(t *testing.T) {
		profile, err := NewUserProfile("user-1", "walker", 500, mockTime)
		require.NoError(t, err)

		assert.True(t, profile.CanAfford(0))
		assert.True(t, profile.CanAfford(500))
		assert.False(t, profile.CanAfford(501))
		assert.False(t, profile.CanAfford(-1))
	})

	t.Run("Debit reduces the balance", func(t *testing.T) {
		profile, err := NewUserProfile("user-1", "walker", 500, mockTime)
		require.NoError(t, err)

		require.NoError(t, profile.Debit(200, mockTime))
		assert.Equal(t, int64(300), profile.Coins())
	})

	t.Run("Debit beyond the balance fails without mutation", func(t *testing.T) {
		profile, err := NewUserProfile("user-1", "walker", 500, mockTime)
		require.NoError(t, err)

		err = profile.Debit(501, mockTime)

		assert.True(t, errs.IsInsufficientCoinsError(err))
		assert.Equal(t, int64(500), profile.Coins())
	})

	t.Run("Negative debit is rejected", func(t *testing.T) {
		profile, err := NewUserProfile("user-1", "walker", 500, mockTime)
		require.NoError(t, err)

		assert.Equal(t, errs.ErrInvalidPrice, profile.Debit(-1, mockTime))
	})

	t.Run("SetCoins restores a stored balance without touching timestamps", func(t *testing.T) {
		profile, err := NewUserProfile("user-1", "walker", 500, mockTime)
		require.NoError(t, err)
		storedUpdatedAt := profile.UpdatedAt

		profile.SetCoins(1250)

		assert.Equal(t, int64(1250), profile.Coins())
		assert.Equal(t, storedUpdatedAt, profile.UpdatedAt)
	})

	t.Run("Credit adds coins and ignores non-positive amounts", func(t *testing.T) {
		profile, err := NewUserProfile("user-1", "walker", 500, mockTime)
		require.NoError(t, err)

		profile.Credit(250, mockTime)
		assert.Equal(t, int64(750), profile.Coins())

		profile.Credit(0, mockTime)
		profile.Credit(-10, mockTime)
		assert.Equal(t, int64(750), profile.Coins())
	})
}

func TestUserProfileSteps(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("AddSteps increments the lifetime count", func(t *testing.T) {
		profile, err := NewUserProfile("user-1", "walker", 0, mockTime)
		require.NoError(t, err)

		require.NoError(t, profile.AddSteps(2500, mockTime))
		require.NoError(t, profile.AddSteps(250, mockTime))
		assert.Equal(t, int64(2750), profile.Steps)
	})

	t.Run("Negative steps are rejected", func(t *testing.T) {
		profile, err := NewUserProfile("user-1", "walker", 0, mockTime)
		require.NoError(t, err)

		assert.Equal(t, errs.ErrInvalidSteps, profile.AddSteps(-1, mockTime))
	})
}

func TestLeaderboardName(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	profile, err := NewUserProfile("user-1", "walker", 0, mockTime)
	require.NoError(t, err)

	assert.Equal(t, "Player", profile.LeaderboardName())

	profile.DisplayName = "Ada"
	assert.Equal(t, "Ada", profile.LeaderboardName())
}
