package entity

import (
	"time"

	errs "github.com/stepexplorer/server/internal/domain/error"
	coreport "github.com/stepexplorer/server/internal/domain/port/core"
)

// UserProfile represents a user's mutable aggregate state: coin balance and
// lifetime step count. The coin balance here is advisory; the authoritative
// balance check happens inside the atomic purchase operation in the repository.
type UserProfile struct {
	ID          string    // UUID of the user (matches the auth subject)
	Username    string    // Login-derived name
	DisplayName string    // Name shown on the leaderboard
	coins       int64     // Coin balance, never negative (private)
	Steps       int64     // Lifetime step count
	AvatarURL   *string   // Optional avatar image
	CreatedAt   time.Time // When the profile was created
	UpdatedAt   time.Time // When the profile was last updated
}

// NewUserProfile creates a new profile with the given ID and starting coin balance
func NewUserProfile(id, username string, startingCoins int64, timeProvider coreport.TimeProvider) (*UserProfile, error) {
	if id == "" {
		return nil, errs.ErrInvalidUserID
	}
	if startingCoins < 0 {
		return nil, errs.ErrInsufficientCoins
	}

	now := timeProvider.Now()
	return &UserProfile{
		ID:        id,
		Username:  username,
		coins:     startingCoins,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Coins returns the current coin balance
func (p *UserProfile) Coins() int64 {
	return p.coins
}

// SetCoins restores a balance loaded from storage. Timestamps are left as
// stored; only Debit/Credit mark the profile as updated.
func (p *UserProfile) SetCoins(coins int64) {
	p.coins = coins
}

// CanAfford checks if the user has enough coins for the given price.
// Advisory only: the atomic purchase operation re-checks under lock.
func (p *UserProfile) CanAfford(price int64) bool {
	return price >= 0 && p.coins >= price
}

// Debit subtracts price from the balance. Returns an error rather than
// letting the balance go negative.
func (p *UserProfile) Debit(price int64, timeProvider coreport.TimeProvider) error {
	if price < 0 {
		return errs.ErrInvalidPrice
	}
	if p.coins < price {
		return errs.NewInsufficientCoinsError(p.ID, price, p.coins)
	}
	p.coins -= price
	p.UpdatedAt = timeProvider.Now()
	return nil
}

// Credit adds earned coins to the balance
func (p *UserProfile) Credit(coins int64, timeProvider coreport.TimeProvider) {
	if coins <= 0 {
		return
	}
	p.coins += coins
	p.UpdatedAt = timeProvider.Now()
}

// AddSteps increments the lifetime step count
func (p *UserProfile) AddSteps(steps int64, timeProvider coreport.TimeProvider) error {
	if steps < 0 {
		return errs.ErrInvalidSteps
	}
	p.Steps += steps
	p.UpdatedAt = timeProvider.Now()
	return nil
}

// LeaderboardName returns the name to display in rankings, falling back to
// a generic placeholder when the profile has no display name
func (p *UserProfile) LeaderboardName() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return "Player"
}
