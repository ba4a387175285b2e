package persistence

import (
	"context"

	"github.com/stepexplorer/server/internal/domain/entity"
)

// ProfileRepository defines essential methods to interact with user profiles
type ProfileRepository interface {
	// GetByID retrieves a profile by user ID
	//
	// Possible errors:
	// - ErrProfileNotFound: If no profile exists for the user
	// - ErrDatabaseConnection: If the database cannot be reached
	GetByID(ctx context.Context, id string) (*entity.UserProfile, error)

	// Create creates a new profile. Used when bootstrapping a first login.
	//
	// Possible errors:
	// - ErrDuplicateProfile: If a profile with the same ID already exists
	// - ErrDatabaseConnection: If the database cannot be reached
	Create(ctx context.Context, profile *entity.UserProfile) error

	// Update updates profile information
	//
	// Possible errors:
	// - ErrProfileNotFound: If the profile doesn't exist
	// - ErrDatabaseConnection: If the database cannot be reached
	Update(ctx context.Context, profile *entity.UserProfile) error

	// TopByCoins retrieves the top-n profiles ordered by coin balance
	// descending. Tie order between equal balances is implementation-defined.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database cannot be reached
	TopByCoins(ctx context.Context, n int) ([]*entity.UserProfile, error)

	// PurchaseAsset performs the atomic purchase operation: verify the current
	// balance covers the price, debit the coins, and insert the ownership row,
	// all as one indivisible unit. This is the sole authoritative writer for
	// purchases; callers must never read-modify-write the coin balance around it.
	//
	// Possible errors:
	// - ErrProfileNotFound: If the profile doesn't exist
	// - ErrInsufficientCoins: If the balance is insufficient at execution time
	// - ErrAssetAlreadyOwned: If an ownership row for (user, asset) already exists
	// - ErrProfileLocked: If the profile row is locked by another operation
	// - ErrDatabaseConnection: If the database cannot be reached
	PurchaseAsset(ctx context.Context, userID, assetID string, price int64) (*entity.UserProfile, error)

	// AddStepsAndCoins atomically increments the lifetime step count and
	// credits earned coins in one update. Both deltas must be non-negative.
	//
	// Possible errors:
	// - ErrProfileNotFound: If the profile doesn't exist
	// - ErrDatabaseConnection: If the database cannot be reached
	AddStepsAndCoins(ctx context.Context, userID string, stepsDelta, coinsDelta int64) (*entity.UserProfile, error)
}
