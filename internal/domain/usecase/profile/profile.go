package profile

import (
	"context"
	"errors"

	"github.com/stepexplorer/server/internal/domain/auth"
	"github.com/stepexplorer/server/internal/domain/entity"
	errs "github.com/stepexplorer/server/internal/domain/error"
	coreport "github.com/stepexplorer/server/internal/domain/port/core"
	"github.com/stepexplorer/server/internal/domain/port/persistence"
)

// DefaultStartingCoins is the balance new profiles begin with
const DefaultStartingCoins int64 = 1000

// BalanceResponse is a user's coin balance
type BalanceResponse struct {
	UserID string
	Coins  int64
}

// UseCase handles profile reads and first-login bootstrap
type UseCase struct {
	profileRepo   persistence.ProfileRepository
	startingCoins int64
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
}

// NewUseCase creates a profile use case
func NewUseCase(
	profileRepo persistence.ProfileRepository,
	startingCoins int64,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	if startingCoins < 0 {
		startingCoins = DefaultStartingCoins
	}
	return &UseCase{
		profileRepo:   profileRepo,
		startingCoins: startingCoins,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// GetProfile returns the session user's profile
func (u *UseCase) GetProfile(ctx context.Context, sess *auth.Session) (*entity.UserProfile, error) {
	if err := sess.Validate(); err != nil {
		return nil, err
	}
	return u.profileRepo.GetByID(ctx, sess.UserID)
}

// EnsureProfile returns the session user's profile, creating one with the
// starting balance on first login.
func (u *UseCase) EnsureProfile(ctx context.Context, sess *auth.Session) (*entity.UserProfile, error) {
	if err := sess.Validate(); err != nil {
		return nil, err
	}

	existing, err := u.profileRepo.GetByID(ctx, sess.UserID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrProfileNotFound) {
		return nil, err
	}

	created, err := entity.NewUserProfile(sess.UserID, sess.Username, u.startingCoins, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.profileRepo.Create(ctx, created); err != nil {
		// Lost a race with another device; the existing profile wins
		if errors.Is(err, errs.ErrDuplicateProfile) {
			return u.profileRepo.GetByID(ctx, sess.UserID)
		}
		return nil, err
	}

	u.logger.Info("Profile bootstrapped", map[string]any{
		"user_id":        sess.UserID,
		"starting_coins": u.startingCoins,
	})
	return created, nil
}

// GetBalance returns the session user's coin balance
func (u *UseCase) GetBalance(ctx context.Context, sess *auth.Session) (*BalanceResponse, error) {
	p, err := u.GetProfile(ctx, sess)
	if err != nil {
		return nil, err
	}
	return &BalanceResponse{
		UserID: p.ID,
		Coins:  p.Coins(),
	}, nil
}
