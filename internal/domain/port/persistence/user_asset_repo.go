package persistence

import (
	"context"

	"github.com/stepexplorer/server/internal/domain/entity"
)

// UserAssetRepository defines essential methods to interact with ownership records
type UserAssetRepository interface {
	// ListAssetIDsByUser retrieves the asset-id projection of a user's
	// ownership rows. Used by the catalog loader to build the owned set.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database cannot be reached
	ListAssetIDsByUser(ctx context.Context, userID string) ([]string, error)

	// ListByUser retrieves the user's full ownership records, including the
	// authoritative purchase price and date.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database cannot be reached
	ListByUser(ctx context.Context, userID string) ([]*entity.UserAsset, error)

	// CountByUser counts a user's ownership rows. Used by the leaderboard
	// aggregator's per-user fan-out.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database cannot be reached
	CountByUser(ctx context.Context, userID string) (int64, error)

	// Exists checks whether the user already owns the asset. Advisory only;
	// the unique (user_id, asset_id) constraint inside the atomic purchase
	// is authoritative.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database cannot be reached
	Exists(ctx context.Context, userID, assetID string) (bool, error)
}
