package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stepexplorer/server/internal/domain/entity"
	errs "github.com/stepexplorer/server/internal/domain/error"
	coreport "github.com/stepexplorer/server/internal/domain/port/core"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/model"
)

// ProfileRepository persists user profiles and applies balance mutations
type ProfileRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	timeProvider    coreport.TimeProvider
	errorClassifier *ErrorClassifier
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *ProfileRepository {
	return &ProfileRepository{
		db:              db,
		logger:          logger,
		timeProvider:    timeProvider,
		errorClassifier: NewErrorClassifier(),
	}
}

func profileModelToEntity(m *model.UserProfile) *entity.UserProfile {
	profile := &entity.UserProfile{
		ID:          m.ID,
		Username:    m.Username,
		DisplayName: m.DisplayName,
		Steps:       m.Steps,
		AvatarURL:   m.AvatarURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	profile.SetCoins(m.Coins)
	return profile
}

func profileEntityToModel(p *entity.UserProfile) *model.UserProfile {
	return &model.UserProfile{
		ID:          p.ID,
		Username:    p.Username,
		DisplayName: p.DisplayName,
		Coins:       p.Coins(),
		Steps:       p.Steps,
		AvatarURL:   p.AvatarURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *ProfileRepository) handleDatabaseError(err error, operation string) error {
	if err == nil {
		return nil
	}

	r.logger.Error("Database operation failed", map[string]any{
		"operation": operation,
		"error":     err.Error(),
	})

	switch {
	case r.errorClassifier.IsLockError(err):
		return errs.ErrProfileLocked
	case r.errorClassifier.IsOwnershipConflict(err):
		return errs.ErrAssetAlreadyOwned
	case r.errorClassifier.IsDuplicateKeyError(err):
		return errs.ErrDuplicateProfile
	case r.errorClassifier.IsConnectionError(err):
		return fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	case r.errorClassifier.IsConstraintError(err):
		return fmt.Errorf("%w: %v", errs.ErrConstraintViolation, err)
	default:
		return fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
	}
}

// GetByID retrieves a profile by user ID
func (r *ProfileRepository) GetByID(ctx context.Context, userID string) (*entity.UserProfile, error) {
	var profileModel model.UserProfile
	err := r.db.WithContext(ctx).First(&profileModel, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrProfileNotFound
		}
		return nil, r.handleDatabaseError(err, "get_profile")
	}
	return profileModelToEntity(&profileModel), nil
}

// Create inserts a new profile row
func (r *ProfileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	profileModel := profileEntityToModel(profile)
	if err := r.db.WithContext(ctx).Create(profileModel).Error; err != nil {
		return r.handleDatabaseError(err, "create_profile")
	}
	return nil
}

// Update persists the mutable fields of an existing profile
func (r *ProfileRepository) Update(ctx context.Context, profile *entity.UserProfile) error {
	result := r.db.WithContext(ctx).Model(&model.UserProfile{}).
		Where("id = ?", profile.ID).
		Updates(map[string]interface{}{
			"username":     profile.Username,
			"display_name": profile.DisplayName,
			"coins":        profile.Coins(),
			"steps":        profile.Steps,
			"avatar_url":   profile.AvatarURL,
			"updated_at":   r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError(result.Error, "update_profile")
	}
	if result.RowsAffected == 0 {
		return errs.ErrProfileNotFound
	}
	return nil
}

// TopByCoins returns the highest-balance profiles ordered by coins descending
func (r *ProfileRepository) TopByCoins(ctx context.Context, limit int) ([]*entity.UserProfile, error) {
	var profileModels []model.UserProfile
	err := r.db.WithContext(ctx).
		Order("coins DESC, id ASC").
		Limit(limit).
		Find(&profileModels).Error
	if err != nil {
		return nil, r.handleDatabaseError(err, "top_by_coins")
	}

	profiles := make([]*entity.UserProfile, 0, len(profileModels))
	for i := range profileModels {
		profiles = append(profiles, profileModelToEntity(&profileModels[i]))
	}
	return profiles, nil
}

// PurchaseAsset debits the buyer and records ownership in a single transaction.
// The profile row is locked for the duration so the affordability check and the
// debit observe the same balance.
func (r *ProfileRepository) PurchaseAsset(ctx context.Context, userID string, assetID string, price int64) (*entity.UserProfile, error) {
	var updated *entity.UserProfile

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profileModel model.UserProfile
		if err := tx.Set("gorm:query_option", "FOR UPDATE").
			First(&profileModel, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrProfileNotFound
			}
			return err
		}

		if profileModel.Coins < price {
			return errs.NewInsufficientCoinsError(userID, price, profileModel.Coins)
		}

		newBalance := profileModel.Coins - price
		if err := tx.Model(&model.UserProfile{}).
			Where("id = ?", userID).
			Updates(map[string]interface{}{
				"coins":      newBalance,
				"updated_at": r.timeProvider.Now(),
			}).Error; err != nil {
			return err
		}

		ownership := model.UserAsset{
			ID:            uuid.NewString(),
			UserID:        userID,
			AssetID:       assetID,
			PurchasePrice: price,
			PurchaseDate:  r.timeProvider.Now(),
		}
		if err := tx.Create(&ownership).Error; err != nil {
			return err
		}

		profileModel.Coins = newBalance
		updated = profileModelToEntity(&profileModel)
		return nil
	})

	if err != nil {
		if errs.IsInsufficientCoinsError(err) || errors.Is(err, errs.ErrProfileNotFound) {
			return nil, err
		}
		return nil, r.handleDatabaseError(err, "purchase_asset")
	}

	r.logger.Info("Purchase committed", map[string]any{
		"user_id":     userID,
		"asset_id":    assetID,
		"price":       price,
		"new_balance": updated.Coins(),
	})
	return updated, nil
}

// AddStepsAndCoins atomically increments a profile's step total and balance
func (r *ProfileRepository) AddStepsAndCoins(ctx context.Context, userID string, stepsDelta int64, coinsDelta int64) (*entity.UserProfile, error) {
	var updated *entity.UserProfile

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profileModel model.UserProfile
		if err := tx.Set("gorm:query_option", "FOR UPDATE").
			First(&profileModel, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrProfileNotFound
			}
			return err
		}

		profileModel.Steps += stepsDelta
		profileModel.Coins += coinsDelta
		if err := tx.Model(&model.UserProfile{}).
			Where("id = ?", userID).
			Updates(map[string]interface{}{
				"steps":      profileModel.Steps,
				"coins":      profileModel.Coins,
				"updated_at": r.timeProvider.Now(),
			}).Error; err != nil {
			return err
		}

		updated = profileModelToEntity(&profileModel)
		return nil
	})

	if err != nil {
		if errors.Is(err, errs.ErrProfileNotFound) {
			return nil, err
		}
		return nil, r.handleDatabaseError(err, "add_steps_and_coins")
	}
	return updated, nil
}
