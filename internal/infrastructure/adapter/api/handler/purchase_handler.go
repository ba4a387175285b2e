package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/stepexplorer/server/internal/domain/error"
	coreport "github.com/stepexplorer/server/internal/domain/port/core"
	"github.com/stepexplorer/server/internal/domain/usecase/purchase"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/api/dto"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/api/middleware"
)

// PurchaseHandler handles purchase-related HTTP requests
type PurchaseHandler struct {
	coordinator *purchase.Coordinator
	logger      coreport.Logger
}

// NewPurchaseHandler creates a new purchase handler instance
func NewPurchaseHandler(coordinator *purchase.Coordinator, logger coreport.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		coordinator: coordinator,
		logger:      logger,
	}
}

// PurchaseAsset handles the POST /assets/{assetId}/purchase endpoint
func (h *PurchaseHandler) PurchaseAsset(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	assetID := c.Param("assetId")

	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid purchase request body",
		})
		return
	}

	receipt, err := h.coordinator.Purchase(c.Request.Context(), sess, assetID, req.Price)
	if err != nil {
		// A committed purchase whose confirmation reload failed still debited
		// the user; report success with the receipt rather than a retryable
		// error that would invite a double purchase.
		if receipt != nil {
			h.logger.Warn("Purchase committed but confirmation reload failed", map[string]any{
				"userId":  sess.UserIDOrEmpty(),
				"assetId": assetID,
				"error":   err.Error(),
			})
			c.JSON(http.StatusOK, receiptToResponse(receipt))
			return
		}

		respondWithError(c, h.logger, err, "Error processing purchase", map[string]any{
			"userId":  sess.UserIDOrEmpty(),
			"assetId": assetID,
			"price":   req.Price,
		})
		return
	}

	c.JSON(http.StatusOK, receiptToResponse(receipt))
}

// ListForSale handles the POST /assets/{assetId}/list-for-sale endpoint.
// Reselling is not supported; the route exists so clients get an explicit
// answer instead of a 404.
func (h *PurchaseHandler) ListForSale(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	assetID := c.Param("assetId")

	if err := h.coordinator.ListForSale(c.Request.Context(), sess, assetID); err != nil {
		respondWithError(c, h.logger, err, "Error listing asset for sale", map[string]any{
			"userId":  sess.UserIDOrEmpty(),
			"assetId": assetID,
		})
		return
	}

	c.Status(http.StatusNoContent)
}

func receiptToResponse(receipt *purchase.Receipt) dto.PurchaseResponse {
	return dto.PurchaseResponse{
		AssetID:    receipt.AssetID,
		Price:      receipt.Price,
		NewBalance: receipt.NewBalance,
		Success:    true,
	}
}
