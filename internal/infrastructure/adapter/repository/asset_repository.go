package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/stepexplorer/server/internal/domain/entity"
	errs "github.com/stepexplorer/server/internal/domain/error"
	coreport "github.com/stepexplorer/server/internal/domain/port/core"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/model"
)

// AssetRepository reads and writes the purchasable asset catalog
type AssetRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *gorm.DB, logger coreport.Logger) *AssetRepository {
	return &AssetRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// catalogRow is the flat projection of an asset joined with its current owner
type catalogRow struct {
	ID             string
	Name           string
	Description    string
	Price          int64
	Latitude       float64
	Longitude      float64
	CityID         string
	Type           string
	Color          string
	ImageURL       string
	CreatedAt      time.Time
	OwnerUserID    *string
	OwnerAvatarURL *string
}

func catalogRowToEntity(row *catalogRow) *entity.Asset {
	asset := &entity.Asset{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
		Latitude:    row.Latitude,
		Longitude:   row.Longitude,
		CityID:      row.CityID,
		Type:        entity.AssetType(row.Type),
		Color:       row.Color,
		ImageURL:    row.ImageURL,
		CreatedAt:   row.CreatedAt,
	}
	if row.OwnerUserID != nil {
		asset.OwnerUserID = *row.OwnerUserID
		asset.OwnerAvatarURL = row.OwnerAvatarURL
	}
	return asset
}

func assetModelToEntity(m *model.Asset) *entity.Asset {
	return &entity.Asset{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		CityID:      m.CityID,
		Type:        entity.AssetType(m.Type),
		Color:       m.Color,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *AssetRepository) handleDatabaseError(err error, operation string) error {
	if err == nil {
		return nil
	}

	r.logger.Error("Database operation failed", map[string]any{
		"operation": operation,
		"error":     err.Error(),
	})

	switch {
	case r.errorClassifier.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", errs.ErrConstraintViolation, err)
	case r.errorClassifier.IsConnectionError(err):
		return fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	case r.errorClassifier.IsConstraintError(err):
		return fmt.Errorf("%w: %v", errs.ErrConstraintViolation, err)
	default:
		return fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
	}
}

// ListCatalog returns every asset with its current owner resolved from the
// ownership table. An asset with no ownership row comes back unowned.
func (r *AssetRepository) ListCatalog(ctx context.Context) ([]*entity.Asset, error) {
	var rows []catalogRow
	err := r.db.WithContext(ctx).
		Table("assets").
		Select("assets.*, user_assets.user_id AS owner_user_id, user_profiles.avatar_url AS owner_avatar_url").
		Joins("LEFT JOIN user_assets ON user_assets.asset_id = assets.id").
		Joins("LEFT JOIN user_profiles ON user_profiles.id = user_assets.user_id").
		Order("assets.name ASC, assets.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError(err, "list_catalog")
	}

	assets := make([]*entity.Asset, 0, len(rows))
	for i := range rows {
		assets = append(assets, catalogRowToEntity(&rows[i]))
	}
	return assets, nil
}

// GetByID retrieves a single asset without ownership resolution
func (r *AssetRepository) GetByID(ctx context.Context, assetID string) (*entity.Asset, error) {
	var assetModel model.Asset
	err := r.db.WithContext(ctx).First(&assetModel, "id = ?", assetID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrAssetNotFound
		}
		return nil, r.handleDatabaseError(err, "get_asset")
	}
	return assetModelToEntity(&assetModel), nil
}

// Create inserts a new catalog asset
func (r *AssetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	assetModel := model.Asset{
		ID:          asset.ID,
		Name:        asset.Name,
		Description: asset.Description,
		Price:       asset.Price,
		Latitude:    asset.Latitude,
		Longitude:   asset.Longitude,
		CityID:      asset.CityID,
		Type:        string(asset.Type),
		Color:       asset.Color,
		ImageURL:    asset.ImageURL,
		CreatedAt:   asset.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&assetModel).Error; err != nil {
		return r.handleDatabaseError(err, "create_asset")
	}
	return nil
}
