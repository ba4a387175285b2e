package database

import (
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/stepexplorer/server/internal/domain/error"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypeProfile represents the user profile entity
	EntityTypeProfile EntityType = "user_profile"
	// EntityTypeAsset represents the asset entity
	EntityTypeAsset EntityType = "asset"
	// EntityTypeUserAsset represents the ownership record entity
	EntityTypeUserAsset EntityType = "user_asset"
	// EntityTypeStepLog represents the step log entity
	EntityTypeStepLog EntityType = "step_log"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrNotFound
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	// Transaction and locking errors
	case strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "serialization") ||
		strings.Contains(errMsg, "lock timeout"):
		return domainErr.ErrProfileLocked

	// Duplicate key errors. The only unique constraints in the schema are the
	// profile primary key and the (user_id, asset_id) ownership index.
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		if strings.Contains(errMsg, "user_assets") {
			return domainErr.ErrAssetAlreadyOwned
		}
		return domainErr.ErrDuplicateProfile

	// Constraint violations
	case strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "foreign key constraint"):
		return domainErr.ErrConstraintViolation

	// Connection issues
	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset"):
		return domainErr.ErrDatabaseConnection

	// Timeout errors
	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	default:
		return domainErr.ErrInternalServer
	}
}

// MapEntityNotFoundError maps database errors to specific entity not found errors
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeProfile:
			return domainErr.ErrProfileNotFound
		case EntityTypeAsset:
			return domainErr.ErrAssetNotFound
		default:
			return domainErr.ErrNotFound
		}
	}

	return m.MapError(err, string(entityType))
}

// MapProfileNotFoundError maps database errors to profile not found errors
func (m *ErrorMapper) MapProfileNotFoundError(err error) error {
	return m.MapEntityNotFoundError(err, EntityTypeProfile)
}

// MapAssetNotFoundError maps database errors to asset not found errors
func (m *ErrorMapper) MapAssetNotFoundError(err error) error {
	return m.MapEntityNotFoundError(err, EntityTypeAsset)
}
