package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/stepexplorer/server/internal/domain/entity"
	errs "github.com/stepexplorer/server/internal/domain/error"
	coreport "github.com/stepexplorer/server/internal/domain/port/core"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/model"
)

// UserAssetRepository reads and writes ownership records
type UserAssetRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserAssetRepository creates a new user asset repository
func NewUserAssetRepository(db *gorm.DB, logger coreport.Logger) *UserAssetRepository {
	return &UserAssetRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func userAssetModelToEntity(m *model.UserAsset) *entity.UserAsset {
	return &entity.UserAsset{
		ID:            m.ID,
		UserID:        m.UserID,
		AssetID:       m.AssetID,
		PurchasePrice: m.PurchasePrice,
		PurchaseDate:  m.PurchaseDate,
	}
}

func (r *UserAssetRepository) handleDatabaseError(err error, operation string) error {
	if err == nil {
		return nil
	}

	r.logger.Error("Database operation failed", map[string]any{
		"operation": operation,
		"error":     err.Error(),
	})

	switch {
	case r.errorClassifier.IsOwnershipConflict(err):
		return errs.ErrAssetAlreadyOwned
	case r.errorClassifier.IsConnectionError(err):
		return fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	case r.errorClassifier.IsConstraintError(err):
		return fmt.Errorf("%w: %v", errs.ErrConstraintViolation, err)
	default:
		return fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
	}
}

// ListAssetIDsByUser returns the IDs of every asset the user owns
func (r *UserAssetRepository) ListAssetIDsByUser(ctx context.Context, userID string) ([]string, error) {
	var assetIDs []string
	err := r.db.WithContext(ctx).
		Model(&model.UserAsset{}).
		Where("user_id = ?", userID).
		Pluck("asset_id", &assetIDs).Error
	if err != nil {
		return nil, r.handleDatabaseError(err, "list_asset_ids")
	}
	return assetIDs, nil
}

// ListByUser returns the full ownership records for a user
func (r *UserAssetRepository) ListByUser(ctx context.Context, userID string) ([]*entity.UserAsset, error) {
	var records []model.UserAsset
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchase_date ASC").
		Find(&records).Error
	if err != nil {
		return nil, r.handleDatabaseError(err, "list_by_user")
	}

	userAssets := make([]*entity.UserAsset, 0, len(records))
	for i := range records {
		userAssets = append(userAssets, userAssetModelToEntity(&records[i]))
	}
	return userAssets, nil
}

// CountByUser returns the number of assets the user owns
func (r *UserAssetRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.UserAsset{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, r.handleDatabaseError(err, "count_by_user")
	}
	return count, nil
}

// Exists reports whether the user already owns the given asset
func (r *UserAssetRepository) Exists(ctx context.Context, userID string, assetID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.UserAsset{}).
		Where("user_id = ? AND asset_id = ?", userID, assetID).
		Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError(err, "ownership_exists")
	}
	return count > 0, nil
}
