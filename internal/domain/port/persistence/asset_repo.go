package persistence

import (
	"context"

	"github.com/stepexplorer/server/internal/domain/entity"
)

// AssetRepository defines essential methods to interact with the asset catalog
type AssetRepository interface {
	// ListCatalog retrieves the full catalog with, for each asset, the single
	// current ownership record (if any) and that owner's avatar URL.
	// No pagination: the whole catalog is always loaded. Acceptable only while
	// the catalog stays small (tens to low hundreds of rows).
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database cannot be reached
	ListCatalog(ctx context.Context) ([]*entity.Asset, error)

	// GetByID retrieves a single asset
	//
	// Possible errors:
	// - ErrAssetNotFound: If the asset doesn't exist
	// - ErrDatabaseConnection: If the database cannot be reached
	GetByID(ctx context.Context, id string) (*entity.Asset, error)

	// Create saves a new asset. Used only by backend-side seeding.
	//
	// Possible errors:
	// - ErrConstraintViolation: If the asset data violates a constraint
	// - ErrDatabaseConnection: If the database cannot be reached
	Create(ctx context.Context, asset *entity.Asset) error
}
