package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stepexplorer/server/internal/domain/auth"
	"github.com/stepexplorer/server/internal/domain/entity"
	errs "github.com/stepexplorer/server/internal/domain/error"
	coremocks "github.com/stepexplorer/server/mocks/port/core"
	persistencemocks "github.com/stepexplorer/server/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEnsureProfile(t *testing.T) {
	ctx := context.Background()
	sess := auth.NewSession("user-1", "walker")
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	existingProfile := func(t *testing.T, coins int64) *entity.UserProfile {
		t.Helper()
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		p, err := entity.NewUserProfile("user-1", "walker", coins, mockTime)
		require.NoError(t, err)
		return p
	}

	t.Run("Existing profile is returned untouched", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockProfileRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		existing := existingProfile(t, 730)
		mockRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(existing, nil).Once()

		useCase := NewUseCase(mockRepo, DefaultStartingCoins, mockTime, mockLogger)

		profile, err := useCase.EnsureProfile(ctx, sess)

		require.NoError(t, err)
		assert.Same(t, existing, profile)
		assert.Equal(t, int64(730), profile.Coins())
	})

	t.Run("First login bootstraps a profile with starting coins", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockProfileRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(nil, errs.ErrProfileNotFound).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *entity.UserProfile) bool {
			return p.ID == "user-1" && p.Coins() == 1000
		})).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		useCase := NewUseCase(mockRepo, DefaultStartingCoins, mockTime, mockLogger)

		profile, err := useCase.EnsureProfile(ctx, sess)

		require.NoError(t, err)
		assert.Equal(t, "user-1", profile.ID)
		assert.Equal(t, int64(1000), profile.Coins())
	})

	t.Run("Lost creation race falls back to the stored profile", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockProfileRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		winner := existingProfile(t, 1000)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(nil, errs.ErrProfileNotFound).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateProfile).Once()
		mockRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(winner, nil).Once()

		useCase := NewUseCase(mockRepo, DefaultStartingCoins, mockTime, mockLogger)

		profile, err := useCase.EnsureProfile(ctx, sess)

		require.NoError(t, err)
		assert.Same(t, winner, profile)
	})

	t.Run("Read failure other than not-found propagates", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockProfileRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		databaseError := errors.New("database connection error")
		mockRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(nil, databaseError).Once()

		useCase := NewUseCase(mockRepo, DefaultStartingCoins, mockTime, mockLogger)

		profile, err := useCase.EnsureProfile(ctx, sess)

		assert.Nil(t, profile)
		assert.Equal(t, databaseError, err)
	})

	t.Run("Missing session is rejected", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockProfileRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		useCase := NewUseCase(mockRepo, DefaultStartingCoins, mockTime, mockLogger)

		profile, err := useCase.EnsureProfile(ctx, nil)

		assert.Nil(t, profile)
		assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
	})
}

func TestGetBalance(t *testing.T) {
	ctx := context.Background()
	sess := auth.NewSession("user-1", "walker")
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Returns the stored balance", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockProfileRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		profileTime := coremocks.NewMockTimeProvider(t)
		profileTime.EXPECT().Now().Return(fixedTime).Maybe()
		stored, err := entity.NewUserProfile("user-1", "walker", 640, profileTime)
		require.NoError(t, err)

		mockRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(stored, nil).Once()

		useCase := NewUseCase(mockRepo, DefaultStartingCoins, mockTime, mockLogger)

		balance, err := useCase.GetBalance(ctx, sess)

		require.NoError(t, err)
		assert.Equal(t, "user-1", balance.UserID)
		assert.Equal(t, int64(640), balance.Coins)
	})

	t.Run("Unknown profile propagates not-found", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockProfileRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(nil, errs.ErrProfileNotFound).Once()

		useCase := NewUseCase(mockRepo, DefaultStartingCoins, mockTime, mockLogger)

		balance, err := useCase.GetBalance(ctx, sess)

		assert.Nil(t, balance)
		assert.ErrorIs(t, err, errs.ErrProfileNotFound)
	})
}
