package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientCoins   = 4001
	CodeInvalidPrice        = 4002
	CodeInvalidUserID       = 4003
	CodeAssetAlreadyOwned   = 4004
	CodeConstraintViolation = 4005
	CodeInvalidSteps        = 4006
	CodeInvalidCoordinates  = 4007
	CodeNotAuthenticated    = 4010
	CodeAssetNotFound       = 4040
	CodeProfileNotFound     = 4041
	CodeProfileLocked       = 4230

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeDataIntegrity  = 5001
)

// Base error types
var (
	// ErrInsufficientCoins is returned when a user cannot afford a purchase
	ErrInsufficientCoins = errors.New("insufficient coins")

	// ErrInvalidPrice is returned when an asset price is negative or malformed
	ErrInvalidPrice = errors.New("invalid price")

	// ErrInvalidUserID is returned when the user ID is empty or malformed
	ErrInvalidUserID = errors.New("user ID must not be empty")

	// ErrInvalidAssetID is returned when the asset ID is empty or malformed
	ErrInvalidAssetID = errors.New("asset ID must not be empty")

	// ErrInvalidSteps is returned when a reported step count is negative
	ErrInvalidSteps = errors.New("step count cannot be negative")

	// ErrInvalidCoordinates is returned when latitude/longitude are out of range
	ErrInvalidCoordinates = errors.New("coordinates out of valid range")

	// ErrNotAuthenticated is returned when no session is available for the operation
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAssetAlreadyOwned is returned when the asset has already been purchased
	ErrAssetAlreadyOwned = errors.New("asset already owned")

	// ErrAssetNotFound is returned when the requested asset doesn't exist
	ErrAssetNotFound = errors.New("asset not found")

	// ErrProfileNotFound is returned when the requested user profile doesn't exist
	ErrProfileNotFound = errors.New("user profile not found")

	// ErrDuplicateProfile is returned when creating a profile that already exists
	ErrDuplicateProfile = errors.New("user profile already exists")

	// ErrProfileLocked is returned when a profile row is locked by another operation
	ErrProfileLocked = errors.New("user profile is locked by another operation")

	// ErrDataIntegrity is returned when a fetched record is missing expected fields.
	// Surfaced instead of silently defaulting; defaults have masked real bugs before.
	ErrDataIntegrity = errors.New("data integrity violation")

	// ErrBackend is returned when the remote operation executed but reported failure
	ErrBackend = errors.New("backend operation failed")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem reaching the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientCoins):
		return CodeInsufficientCoins
	case errors.Is(err, ErrInvalidPrice):
		return CodeInvalidPrice
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidSteps):
		return CodeInvalidSteps
	case errors.Is(err, ErrInvalidCoordinates):
		return CodeInvalidCoordinates
	case errors.Is(err, ErrAssetAlreadyOwned):
		return CodeAssetAlreadyOwned
	case errors.Is(err, ErrAssetNotFound):
		return CodeAssetNotFound
	case errors.Is(err, ErrProfileNotFound):
		return CodeProfileNotFound
	case errors.Is(err, ErrNotAuthenticated):
		return CodeNotAuthenticated
	case errors.Is(err, ErrProfileLocked):
		return CodeProfileLocked
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrDataIntegrity):
		return CodeDataIntegrity
	default:
		return CodeInternalServer
	}
}

// PurchaseError represents an error raised while coordinating an asset purchase
type PurchaseError struct {
	UserID  string
	AssetID string
	Price   int64
	Reason  string
	Err     error
}

// Error implements the error interface for PurchaseError
func (e *PurchaseError) Error() string {
	return fmt.Sprintf("purchase failed for asset %s (user: %s, price: %d): %s - %v",
		e.AssetID, e.UserID, e.Price, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *PurchaseError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PurchaseError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "purchase_error",
		"user_id":    e.UserID,
		"asset_id":   e.AssetID,
		"price":      e.Price,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewPurchaseError creates a detailed purchase error
func NewPurchaseError(userID, assetID string, price int64, reason string, err error) error {
	return &PurchaseError{
		UserID:  userID,
		AssetID: assetID,
		Price:   price,
		Reason:  reason,
		Err:     err,
	}
}

// InsufficientCoinsError provides detailed error information for failed affordability checks
type InsufficientCoinsError struct {
	UserID  string
	Price   int64
	Balance int64
}

// Error implements the error interface
func (e *InsufficientCoinsError) Error() string {
	return fmt.Sprintf("insufficient coins for user %s: required %d, available %d",
		e.UserID, e.Price, e.Balance)
}

// Is checks if the target error is an ErrInsufficientCoins
func (e *InsufficientCoinsError) Is(target error) bool {
	return target == ErrInsufficientCoins
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientCoinsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_coins",
		"user_id":    e.UserID,
		"price":      e.Price,
		"balance":    e.Balance,
		"error_code": CodeInsufficientCoins,
	}
}

// NewInsufficientCoinsError creates a new detailed insufficient coins error
func NewInsufficientCoinsError(userID string, price, balance int64) error {
	return &InsufficientCoinsError{
		UserID:  userID,
		Price:   price,
		Balance: balance,
	}
}

// AlreadyOwnedError provides detailed information about duplicate purchase attempts
type AlreadyOwnedError struct {
	UserID  string
	AssetID string
}

// Error implements the error interface
func (e *AlreadyOwnedError) Error() string {
	return fmt.Sprintf("asset %s is already owned by user %s", e.AssetID, e.UserID)
}

// Is checks if the target error is an ErrAssetAlreadyOwned
func (e *AlreadyOwnedError) Is(target error) bool {
	return target == ErrAssetAlreadyOwned
}

// LogFields returns a map of fields for structured logging
func (e *AlreadyOwnedError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "already_owned",
		"user_id":    e.UserID,
		"asset_id":   e.AssetID,
		"error_code": CodeAssetAlreadyOwned,
	}
}

// NewAlreadyOwnedError creates a new detailed already-owned error
func NewAlreadyOwnedError(userID, assetID string) error {
	return &AlreadyOwnedError{UserID: userID, AssetID: assetID}
}

// DataIntegrityError reports a fetched record with missing or malformed fields
type DataIntegrityError struct {
	Entity string
	ID     string
	Field  string
}

// Error implements the error interface
func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity violation in %s %s: field %s is missing or malformed",
		e.Entity, e.ID, e.Field)
}

// Is checks if the target error is an ErrDataIntegrity
func (e *DataIntegrityError) Is(target error) bool {
	return target == ErrDataIntegrity
}

// LogFields returns a map of fields for structured logging
func (e *DataIntegrityError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "data_integrity",
		"entity":     e.Entity,
		"id":         e.ID,
		"field":      e.Field,
		"error_code": CodeDataIntegrity,
	}
}

// NewDataIntegrityError creates a new detailed data integrity error
func NewDataIntegrityError(entity, id, field string) error {
	return &DataIntegrityError{Entity: entity, ID: id, Field: field}
}

// IsInsufficientCoinsError checks if the error is related to insufficient coins
func IsInsufficientCoinsError(err error) bool {
	return errors.Is(err, ErrInsufficientCoins)
}

// IsAlreadyOwnedError checks if the error is a duplicate purchase error
func IsAlreadyOwnedError(err error) bool {
	return errors.Is(err, ErrAssetAlreadyOwned)
}

// IsNotAuthenticatedError checks if the error is a missing session error
func IsNotAuthenticatedError(err error) bool {
	return errors.Is(err, ErrNotAuthenticated)
}

// IsDataIntegrityError checks if the error is a data integrity error
func IsDataIntegrityError(err error) bool {
	return errors.Is(err, ErrDataIntegrity)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAssetNotFound) ||
		errors.Is(err, ErrProfileNotFound)
}

// IsProfileLockedError checks if the error is related to a locked profile row
func IsProfileLockedError(err error) bool {
	return errors.Is(err, ErrProfileLocked)
}

// IsRetryable reports whether the error is a transport-level failure that can
// be retried without any precondition change
func IsRetryable(err error) bool {
	return errors.Is(err, ErrDatabaseConnection)
}
