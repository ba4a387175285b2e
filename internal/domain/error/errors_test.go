package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	// Test to ensure all base error types are defined properly
	if ErrInsufficientCoins.Error() != "insufficient coins" {
		t.Errorf("ErrInsufficientCoins has unexpected message: %s", ErrInsufficientCoins.Error())
	}
	if ErrAssetAlreadyOwned.Error() != "asset already owned" {
		t.Errorf("ErrAssetAlreadyOwned has unexpected message: %s", ErrAssetAlreadyOwned.Error())
	}
	if ErrNotAuthenticated.Error() != "not authenticated" {
		t.Errorf("ErrNotAuthenticated has unexpected message: %s", ErrNotAuthenticated.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientCoins", ErrInsufficientCoins, 4001},
		{"InvalidPrice", ErrInvalidPrice, 4002},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"AssetAlreadyOwned", ErrAssetAlreadyOwned, 4004},
		{"ConstraintViolation", ErrConstraintViolation, 4005},
		{"InvalidSteps", ErrInvalidSteps, 4006},
		{"InvalidCoordinates", ErrInvalidCoordinates, 4007},
		{"NotAuthenticated", ErrNotAuthenticated, 4010},
		{"AssetNotFound", ErrAssetNotFound, 4040},
		{"ProfileNotFound", ErrProfileNotFound, 4041},
		{"ProfileLocked", ErrProfileLocked, 4230},
		{"DataIntegrity", ErrDataIntegrity, 5001},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestPurchaseError(t *testing.T) {
	baseErr := ErrInvalidPrice
	purchaseErr := &PurchaseError{
		UserID:  "user-1",
		AssetID: "asset-9",
		Price:   500,
		Reason:  "list price changed",
		Err:     baseErr,
	}

	// Test Error method
	expectedErrMsg := "purchase failed for asset asset-9 (user: user-1, price: 500): list price changed - invalid price"
	if purchaseErr.Error() != expectedErrMsg {
		t.Errorf("PurchaseError.Error() = %s, want %s", purchaseErr.Error(), expectedErrMsg)
	}

	// Test Unwrap method
	if !errors.Is(purchaseErr, baseErr) {
		t.Errorf("errors.Is(purchaseErr, baseErr) = false, want true")
	}

	// Test LogFields content
	fields := purchaseErr.LogFields()
	if fields["asset_id"] != "asset-9" {
		t.Errorf("LogFields()[asset_id] = %v, want asset-9", fields["asset_id"])
	}
	if fields["error_code"] != CodeInvalidPrice {
		t.Errorf("LogFields()[error_code] = %v, want %d", fields["error_code"], CodeInvalidPrice)
	}
}

func TestInsufficientCoinsError(t *testing.T) {
	err := NewInsufficientCoinsError("user-2", 800, 350)

	expectedErrMsg := "insufficient coins for user user-2: required 800, available 350"
	if err.Error() != expectedErrMsg {
		t.Errorf("InsufficientCoinsError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrInsufficientCoins) {
		t.Errorf("errors.Is(err, ErrInsufficientCoins) = false, want true")
	}
	if !IsInsufficientCoinsError(err) {
		t.Errorf("IsInsufficientCoinsError(err) = false, want true")
	}
	if ErrorCode(err) != CodeInsufficientCoins {
		t.Errorf("ErrorCode(err) = %d, want %d", ErrorCode(err), CodeInsufficientCoins)
	}
}

func TestAlreadyOwnedError(t *testing.T) {
	err := NewAlreadyOwnedError("user-3", "asset-7")

	expectedErrMsg := "asset asset-7 is already owned by user user-3"
	if err.Error() != expectedErrMsg {
		t.Errorf("AlreadyOwnedError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrAssetAlreadyOwned) {
		t.Errorf("errors.Is(err, ErrAssetAlreadyOwned) = false, want true")
	}
	if !IsAlreadyOwnedError(err) {
		t.Errorf("IsAlreadyOwnedError(err) = false, want true")
	}
}

func TestDataIntegrityError(t *testing.T) {
	err := NewDataIntegrityError("asset", "asset-4", "price")

	expectedErrMsg := "data integrity violation in asset asset-4: field price is missing or malformed"
	if err.Error() != expectedErrMsg {
		t.Errorf("DataIntegrityError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !IsDataIntegrityError(err) {
		t.Errorf("IsDataIntegrityError(err) = false, want true")
	}
	if ErrorCode(err) != CodeDataIntegrity {
		t.Errorf("ErrorCode(err) = %d, want %d", ErrorCode(err), CodeDataIntegrity)
	}
}

func TestIsNotFoundError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"NotFound", ErrNotFound, true},
		{"AssetNotFound", ErrAssetNotFound, true},
		{"ProfileNotFound", ErrProfileNotFound, true},
		{"WrappedProfileNotFound", fmt.Errorf("load: %w", ErrProfileNotFound), true},
		{"Unrelated", ErrInvalidPrice, false},
		{"Nil", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsNotFoundError(tc.err); got != tc.expected {
				t.Errorf("IsNotFoundError(%v) = %v, want %v", tc.err, got, tc.expected)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(fmt.Errorf("query: %w", ErrDatabaseConnection)) {
		t.Errorf("IsRetryable(wrapped ErrDatabaseConnection) = false, want true")
	}
	if IsRetryable(ErrInsufficientCoins) {
		t.Errorf("IsRetryable(ErrInsufficientCoins) = true, want false")
	}
}
