package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/stepexplorer/server/internal/domain/error"
	coreport "github.com/stepexplorer/server/internal/domain/port/core"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/api/dto"
)

// respondWithError maps a domain error to an HTTP status and writes the
// standard error payload
func respondWithError(c *gin.Context, logger coreport.Logger, err error, logMessage string, fields map[string]any) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case domainerr.IsNotAuthenticatedError(err):
		statusCode = http.StatusUnauthorized
		message = "Not authenticated"
	case domainerr.IsInsufficientCoinsError(err):
		statusCode = http.StatusPaymentRequired
		message = "Insufficient coins"
	case domainerr.IsAlreadyOwnedError(err):
		statusCode = http.StatusConflict
		message = "Asset already owned"
	case errors.Is(err, domainerr.ErrAssetNotFound):
		statusCode = http.StatusNotFound
		message = "Asset not found"
	case errors.Is(err, domainerr.ErrProfileNotFound):
		statusCode = http.StatusNotFound
		message = "User profile not found"
	case errors.Is(err, domainerr.ErrInvalidPrice):
		statusCode = http.StatusConflict
		message = "Price does not match the current list price"
	case errors.Is(err, domainerr.ErrInvalidSteps):
		statusCode = http.StatusBadRequest
		message = "Step count cannot be negative"
	case errors.Is(err, domainerr.ErrInvalidCoordinates):
		statusCode = http.StatusBadRequest
		message = "Coordinates out of valid range"
	case errors.Is(err, domainerr.ErrInvalidAssetID):
		statusCode = http.StatusBadRequest
		message = "Asset ID must not be empty"
	case domainerr.IsProfileLockedError(err):
		statusCode = http.StatusTooManyRequests
		message = "Profile is busy, retry shortly"
	case domainerr.IsDataIntegrityError(err):
		statusCode = http.StatusInternalServerError
		message = "Data integrity violation"
	}

	if fields == nil {
		fields = map[string]any{}
	}
	fields["error"] = err.Error()
	logger.Error(logMessage, fields)

	c.JSON(statusCode, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
