package leaderboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stepexplorer/server/internal/domain/entity"
	coremocks "github.com/stepexplorer/server/mocks/port/core"
	persistencemocks "github.com/stepexplorer/server/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func profileWithCoins(t *testing.T, id, displayName string, coins int64, avatarURL *string) *entity.UserProfile {
	t.Helper()
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	profile, err := entity.NewUserProfile(id, "walker", coins, mockTime)
	require.NoError(t, err)
	profile.DisplayName = displayName
	profile.AvatarURL = avatarURL
	return profile
}

func newAggregatorLogger(t *testing.T) *coremocks.MockLogger {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func TestTopN(t *testing.T) {
	ctx := context.Background()

	t.Run("Builds entries in coins-descending order with counts", func(t *testing.T) {
		mockProfiles := persistencemocks.NewMockProfileRepository(t)
		mockUserAssets := persistencemocks.NewMockUserAssetRepository(t)

		avatar := "https://example.com/a.png"
		top := []*entity.UserProfile{
			profileWithCoins(t, "user-1", "Ada", 900, &avatar),
			profileWithCoins(t, "user-2", "", 700, nil),
			profileWithCoins(t, "user-3", "Grace", 500, nil),
		}

		mockProfiles.EXPECT().TopByCoins(mock.Anything, 3).Return(top, nil).Once()
		mockUserAssets.EXPECT().CountByUser(mock.Anything, "user-1").Return(int64(4), nil).Once()
		mockUserAssets.EXPECT().CountByUser(mock.Anything, "user-2").Return(int64(0), nil).Once()
		mockUserAssets.EXPECT().CountByUser(mock.Anything, "user-3").Return(int64(2), nil).Once()

		aggregator := NewAggregator(mockProfiles, mockUserAssets, time.Minute, newAggregatorLogger(t))

		entries, err := aggregator.TopN(ctx, 3)

		require.NoError(t, err)
		require.Len(t, entries, 3)

		assert.Equal(t, "Ada", entries[0].DisplayName)
		assert.Equal(t, avatar, entries[0].AvatarURL)
		assert.Equal(t, int64(900), entries[0].Coins)
		assert.Equal(t, int64(4), entries[0].BuildingCount)

		// Missing display name and avatar fall back to placeholders
		assert.Equal(t, "Player", entries[1].DisplayName)
		assert.Equal(t, DefaultAvatarURL, entries[1].AvatarURL)

		assert.Equal(t, "Grace", entries[2].DisplayName)
		assert.Equal(t, int64(2), entries[2].BuildingCount)
	})

	t.Run("Second call within TTL is served from cache", func(t *testing.T) {
		mockProfiles := persistencemocks.NewMockProfileRepository(t)
		mockUserAssets := persistencemocks.NewMockUserAssetRepository(t)

		top := []*entity.UserProfile{profileWithCoins(t, "user-1", "Ada", 900, nil)}
		mockProfiles.EXPECT().TopByCoins(mock.Anything, 1).Return(top, nil).Once()
		mockUserAssets.EXPECT().CountByUser(mock.Anything, "user-1").Return(int64(1), nil).Once()

		aggregator := NewAggregator(mockProfiles, mockUserAssets, time.Minute, newAggregatorLogger(t))

		first, err := aggregator.TopN(ctx, 1)
		require.NoError(t, err)
		second, err := aggregator.TopN(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Out-of-range n is clamped to the maximum", func(t *testing.T) {
		mockProfiles := persistencemocks.NewMockProfileRepository(t)
		mockUserAssets := persistencemocks.NewMockUserAssetRepository(t)

		mockProfiles.EXPECT().TopByCoins(mock.Anything, MaxEntries).Return(nil, nil).Twice()

		// Nanosecond TTL so the second call cannot be served from cache
		aggregator := NewAggregator(mockProfiles, mockUserAssets, time.Nanosecond, newAggregatorLogger(t))

		_, err := aggregator.TopN(ctx, 0)
		require.NoError(t, err)
		_, err = aggregator.TopN(ctx, MaxEntries+5)
		require.NoError(t, err)
	})

	t.Run("Profile query failure propagates", func(t *testing.T) {
		mockProfiles := persistencemocks.NewMockProfileRepository(t)
		mockUserAssets := persistencemocks.NewMockUserAssetRepository(t)

		databaseError := errors.New("database connection error")
		mockProfiles.EXPECT().TopByCoins(mock.Anything, 5).Return(nil, databaseError).Once()

		aggregator := NewAggregator(mockProfiles, mockUserAssets, time.Minute, newAggregatorLogger(t))

		entries, err := aggregator.TopN(ctx, 5)

		assert.Nil(t, entries)
		assert.Equal(t, databaseError, err)
	})

	t.Run("Any count failure fails the whole build", func(t *testing.T) {
		mockProfiles := persistencemocks.NewMockProfileRepository(t)
		mockUserAssets := persistencemocks.NewMockUserAssetRepository(t)

		top := []*entity.UserProfile{
			profileWithCoins(t, "user-1", "Ada", 900, nil),
			profileWithCoins(t, "user-2", "Grace", 700, nil),
		}
		databaseError := errors.New("database connection error")
		mockProfiles.EXPECT().TopByCoins(mock.Anything, 2).Return(top, nil).Once()
		mockUserAssets.EXPECT().CountByUser(mock.Anything, "user-1").Return(int64(1), nil).Once()
		mockUserAssets.EXPECT().CountByUser(mock.Anything, "user-2").Return(int64(0), databaseError).Once()

		aggregator := NewAggregator(mockProfiles, mockUserAssets, time.Minute, newAggregatorLogger(t))

		entries, err := aggregator.TopN(ctx, 2)

		assert.Nil(t, entries)
		assert.Equal(t, databaseError, err)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("Warms the cache so the next read skips the store", func(t *testing.T) {
		mockProfiles := persistencemocks.NewMockProfileRepository(t)
		mockUserAssets := persistencemocks.NewMockUserAssetRepository(t)

		top := []*entity.UserProfile{profileWithCoins(t, "user-1", "Ada", 900, nil)}
		mockProfiles.EXPECT().TopByCoins(mock.Anything, MaxEntries).Return(top, nil).Once()
		mockUserAssets.EXPECT().CountByUser(mock.Anything, "user-1").Return(int64(3), nil).Once()

		aggregator := NewAggregator(mockProfiles, mockUserAssets, time.Minute, newAggregatorLogger(t))

		require.NoError(t, aggregator.Refresh(ctx))

		entries, err := aggregator.TopN(ctx, MaxEntries)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, int64(3), entries[0].BuildingCount)
	})

	t.Run("Build failure propagates", func(t *testing.T) {
		mockProfiles := persistencemocks.NewMockProfileRepository(t)
		mockUserAssets := persistencemocks.NewMockUserAssetRepository(t)

		databaseError := errors.New("database connection error")
		mockProfiles.EXPECT().TopByCoins(mock.Anything, MaxEntries).Return(nil, databaseError).Once()

		aggregator := NewAggregator(mockProfiles, mockUserAssets, time.Minute, newAggregatorLogger(t))

		assert.Equal(t, databaseError, aggregator.Refresh(ctx))
	})
}
