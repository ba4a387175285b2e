package purchase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stepexplorer/server/internal/domain/auth"
	"github.com/stepexplorer/server/internal/domain/entity"
	errs "github.com/stepexplorer/server/internal/domain/error"
	"github.com/stepexplorer/server/internal/domain/usecase/catalog"
	coremocks "github.com/stepexplorer/server/mocks/port/core"
	persistencemocks "github.com/stepexplorer/server/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type coordinatorFixture struct {
	coordinator   *Coordinator
	profileRepo   *persistencemocks.MockProfileRepository
	userAssetRepo *persistencemocks.MockUserAssetRepository
	assetRepo     *persistencemocks.MockAssetRepository
	timeProvider  *coremocks.MockTimeProvider
}

func newCoordinatorFixture(t *testing.T) *coordinatorFixture {
	mockProfiles := persistencemocks.NewMockProfileRepository(t)
	mockUserAssets := persistencemocks.NewMockUserAssetRepository(t)
	mockAssets := persistencemocks.NewMockAssetRepository(t)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockLogger := coremocks.NewMockLogger(t)

	// Queue workers and the purchase path log at several levels
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	loader := catalog.NewLoader(mockAssets, mockUserAssets, mockLogger)
	coordinator := NewCoordinator(mockProfiles, mockUserAssets, mockAssets, loader, mockTime, mockLogger)
	t.Cleanup(coordinator.Shutdown)

	return &coordinatorFixture{
		coordinator:   coordinator,
		profileRepo:   mockProfiles,
		userAssetRepo: mockUserAssets,
		assetRepo:     mockAssets,
		timeProvider:  mockTime,
	}
}

func testProfile(t *testing.T, id string, coins int64) *entity.UserProfile {
	t.Helper()
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	profile, err := entity.NewUserProfile(id, "walker", coins, mockTime)
	require.NoError(t, err)
	return profile
}

func TestPurchase(t *testing.T) {
	ctx := context.Background()
	sess := auth.NewSession("user-1", "walker")

	landmark := &entity.Asset{
		ID: "asset-1", Name: "Empire State Building", Price: 500,
		Latitude: 40.7484, Longitude: -73.9857, Type: entity.AssetTypeLandmark,
	}

	t.Run("Successful purchase returns receipt with reloaded catalog", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		f.assetRepo.EXPECT().GetByID(mock.Anything, "asset-1").Return(landmark, nil).Once()
		f.userAssetRepo.EXPECT().Exists(mock.Anything, "user-1", "asset-1").Return(false, nil).Once()
		f.profileRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(testProfile(t, "user-1", 1000), nil).Once()
		f.profileRepo.EXPECT().PurchaseAsset(mock.Anything, "user-1", "asset-1", int64(500)).
			Return(testProfile(t, "user-1", 500), nil).Once()

		// Post-purchase reload
		f.assetRepo.EXPECT().ListCatalog(mock.Anything).Return([]*entity.Asset{landmark}, nil).Once()
		f.userAssetRepo.EXPECT().ListAssetIDsByUser(mock.Anything, "user-1").Return([]string{"asset-1"}, nil).Once()
		f.userAssetRepo.EXPECT().ListByUser(mock.Anything, "user-1").
			Return([]*entity.UserAsset{{ID: "ua-1", UserID: "user-1", AssetID: "asset-1", PurchasePrice: 500}}, nil).Once()

		receipt, err := f.coordinator.Purchase(ctx, sess, "asset-1", 500)

		require.NoError(t, err)
		require.NotNil(t, receipt)
		assert.Equal(t, "asset-1", receipt.AssetID)
		assert.Equal(t, int64(500), receipt.Price)
		assert.Equal(t, int64(500), receipt.NewBalance)
		require.NotNil(t, receipt.Catalog)
		assert.Contains(t, receipt.Catalog.OwnedAssetIDs, "asset-1")
	})

	t.Run("Concurrent jointly unaffordable purchases yield exactly one success", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		assetA := &entity.Asset{
			ID: "asset-a", Name: "Brooklyn Bridge", Price: 600,
			Latitude: 40.7061, Longitude: -73.9969, Type: entity.AssetTypeLandmark,
		}
		assetB := &entity.Asset{
			ID: "asset-b", Name: "One World Trade Center", Price: 600,
			Latitude: 40.7127, Longitude: -74.0134, Type: entity.AssetTypeBuilding,
		}

		f.assetRepo.EXPECT().GetByID(mock.Anything, "asset-a").Return(assetA, nil).Once()
		f.assetRepo.EXPECT().GetByID(mock.Anything, "asset-b").Return(assetB, nil).Once()
		f.userAssetRepo.EXPECT().Exists(mock.Anything, "user-1", mock.Anything).Return(false, nil).Times(2)
		// Both advisory reads see the stale pre-purchase balance: each
		// purchase looks affordable on its own
		f.profileRepo.EXPECT().GetByID(mock.Anything, "user-1").
			RunAndReturn(func(context.Context, string) (*entity.UserProfile, error) {
				return testProfile(t, "user-1", 1000), nil
			}).Times(2)

		// Stateful atomic operation over a shared balance: the second debit
		// must fail once the first has committed
		remaining := testProfile(t, "user-1", 400)
		var mu sync.Mutex
		balance := int64(1000)
		f.profileRepo.EXPECT().PurchaseAsset(mock.Anything, "user-1", mock.Anything, int64(600)).
			RunAndReturn(func(_ context.Context, userID, _ string, price int64) (*entity.UserProfile, error) {
				mu.Lock()
				defer mu.Unlock()
				if balance < price {
					return nil, errs.NewInsufficientCoinsError(userID, price, balance)
				}
				balance -= price
				return remaining, nil
			}).Times(2)

		// Reload runs only for the single committed purchase
		f.assetRepo.EXPECT().ListCatalog(mock.Anything).Return([]*entity.Asset{assetA, assetB}, nil).Once()
		f.userAssetRepo.EXPECT().ListAssetIDsByUser(mock.Anything, "user-1").Return(nil, nil).Once()
		f.userAssetRepo.EXPECT().ListByUser(mock.Anything, "user-1").Return(nil, nil).Once()

		type outcome struct {
			receipt *Receipt
			err     error
		}
		results := make(chan outcome, 2)
		for _, assetID := range []string{"asset-a", "asset-b"} {
			go func(assetID string) {
				receipt, err := f.coordinator.Purchase(ctx, sess, assetID, 600)
				results <- outcome{receipt, err}
			}(assetID)
		}

		var successes, rejections int
		for i := 0; i < 2; i++ {
			got := <-results
			if got.err == nil {
				successes++
				require.NotNil(t, got.receipt)
				assert.Equal(t, int64(400), got.receipt.NewBalance)
			} else {
				rejections++
				assert.True(t, errs.IsInsufficientCoinsError(got.err))
			}
		}
		assert.Equal(t, 1, successes)
		assert.Equal(t, 1, rejections)

		mu.Lock()
		assert.Equal(t, int64(400), balance)
		mu.Unlock()
	})

	t.Run("Insufficient coins fails before the atomic operation", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		f.assetRepo.EXPECT().GetByID(mock.Anything, "asset-1").Return(landmark, nil).Once()
		f.userAssetRepo.EXPECT().Exists(mock.Anything, "user-1", "asset-1").Return(false, nil).Once()
		f.profileRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(testProfile(t, "user-1", 499), nil).Once()
		// PurchaseAsset is never expected: the mock fails the test if it runs

		receipt, err := f.coordinator.Purchase(ctx, sess, "asset-1", 500)

		assert.Nil(t, receipt)
		assert.True(t, errs.IsInsufficientCoinsError(err))
	})

	t.Run("Already-owned asset is rejected without purchasing", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		f.assetRepo.EXPECT().GetByID(mock.Anything, "asset-1").Return(landmark, nil).Once()
		f.userAssetRepo.EXPECT().Exists(mock.Anything, "user-1", "asset-1").Return(true, nil).Once()

		receipt, err := f.coordinator.Purchase(ctx, sess, "asset-1", 500)

		assert.Nil(t, receipt)
		assert.True(t, errs.IsAlreadyOwnedError(err))
	})

	t.Run("Price mismatch with current list price is rejected", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		f.assetRepo.EXPECT().GetByID(mock.Anything, "asset-1").Return(landmark, nil).Once()

		receipt, err := f.coordinator.Purchase(ctx, sess, "asset-1", 450)

		assert.Nil(t, receipt)
		assert.ErrorIs(t, err, errs.ErrInvalidPrice)
	})

	t.Run("Unknown asset is rejected", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		f.assetRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, errs.ErrAssetNotFound).Once()

		receipt, err := f.coordinator.Purchase(ctx, sess, "ghost", 500)

		assert.Nil(t, receipt)
		assert.ErrorIs(t, err, errs.ErrAssetNotFound)
	})

	t.Run("Atomic operation rejection propagates unchanged", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		f.assetRepo.EXPECT().GetByID(mock.Anything, "asset-1").Return(landmark, nil).Once()
		f.userAssetRepo.EXPECT().Exists(mock.Anything, "user-1", "asset-1").Return(false, nil).Once()
		f.profileRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(testProfile(t, "user-1", 1000), nil).Once()

		// A concurrent device spent the coins between the advisory check and the write
		f.profileRepo.EXPECT().PurchaseAsset(mock.Anything, "user-1", "asset-1", int64(500)).
			Return(nil, errs.ErrInsufficientCoins).Once()

		receipt, err := f.coordinator.Purchase(ctx, sess, "asset-1", 500)

		assert.Nil(t, receipt)
		assert.ErrorIs(t, err, errs.ErrInsufficientCoins)
	})

	t.Run("Reload failure after commit still returns the receipt", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		f.assetRepo.EXPECT().GetByID(mock.Anything, "asset-1").Return(landmark, nil).Once()
		f.userAssetRepo.EXPECT().Exists(mock.Anything, "user-1", "asset-1").Return(false, nil).Once()
		f.profileRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(testProfile(t, "user-1", 1000), nil).Once()
		f.profileRepo.EXPECT().PurchaseAsset(mock.Anything, "user-1", "asset-1", int64(500)).
			Return(testProfile(t, "user-1", 500), nil).Once()

		databaseError := errors.New("database connection error")
		f.assetRepo.EXPECT().ListCatalog(mock.Anything).Return(nil, databaseError).Once()

		receipt, err := f.coordinator.Purchase(ctx, sess, "asset-1", 500)

		require.NotNil(t, receipt)
		assert.Equal(t, int64(500), receipt.NewBalance)
		assert.Nil(t, receipt.Catalog)
		assert.ErrorIs(t, err, databaseError)
	})

	t.Run("Missing session is rejected", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		receipt, err := f.coordinator.Purchase(ctx, nil, "asset-1", 500)

		assert.Nil(t, receipt)
		assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
	})

	t.Run("Empty asset id is rejected", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		receipt, err := f.coordinator.Purchase(ctx, sess, "", 500)

		assert.Nil(t, receipt)
		assert.ErrorIs(t, err, errs.ErrInvalidAssetID)
	})

	t.Run("Negative price is rejected", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		receipt, err := f.coordinator.Purchase(ctx, sess, "asset-1", -1)

		assert.Nil(t, receipt)
		assert.ErrorIs(t, err, errs.ErrInvalidPrice)
	})
}

func TestListForSale(t *testing.T) {
	ctx := context.Background()
	sess := auth.NewSession("user-1", "walker")

	t.Run("Accepted as a no-op", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		err := f.coordinator.ListForSale(ctx, sess, "asset-1")

		assert.NoError(t, err)
	})

	t.Run("Missing session is rejected", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		err := f.coordinator.ListForSale(ctx, nil, "asset-1")

		assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
	})

	t.Run("Empty asset id is rejected", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		err := f.coordinator.ListForSale(ctx, sess, "")

		assert.ErrorIs(t, err, errs.ErrInvalidAssetID)
	})
}
