package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stepexplorer/server/internal/domain/entity"
	domainerr "github.com/stepexplorer/server/internal/domain/error"
	coreport "github.com/stepexplorer/server/internal/domain/port/core"
	"github.com/stepexplorer/server/internal/domain/usecase/catalog"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/api/dto"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/api/middleware"
)

// CatalogHandler handles catalog-related HTTP requests
type CatalogHandler struct {
	loader       *catalog.Loader
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewCatalogHandler creates a new catalog handler instance
func NewCatalogHandler(
	loader *catalog.Loader,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *CatalogHandler {
	return &CatalogHandler{
		loader:       loader,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetCatalog handles the GET /catalog endpoint
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	view, err := h.loader.LoadCatalog(c.Request.Context(), sess)
	if err != nil {
		respondWithError(c, h.logger, err, "Error loading catalog", map[string]any{
			"userId": sess.UserIDOrEmpty(),
		})
		return
	}

	portfolio, err := catalog.Reconcile(sess.UserID, view.AllAssets, view.OwnedAssetIDs, view.OwnedRecords, h.timeProvider.Now())
	if err != nil {
		respondWithError(c, h.logger, err, "Error reconciling portfolio", map[string]any{
			"userId": sess.UserIDOrEmpty(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.CatalogResponse{
		Assets:    assetsToResponse(view.AllAssets, sess.UserID),
		Portfolio: portfolioToResponse(portfolio),
	})
}

// GetNearby handles the GET /catalog/nearby endpoint
func (h *CatalogHandler) GetNearby(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidCoordinates),
			Message: "Invalid lat/lng query parameters",
		})
		return
	}

	radius := 1000.0
	if raw := c.Query("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Invalid radius query parameter",
			})
			return
		}
		radius = parsed
	}

	assets, err := h.loader.Nearby(c.Request.Context(), sess, lat, lng, radius)
	if err != nil {
		respondWithError(c, h.logger, err, "Error loading nearby assets", map[string]any{
			"userId": sess.UserIDOrEmpty(),
			"lat":    lat,
			"lng":    lng,
			"radius": radius,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NearbyResponse{
		Assets: assetsToResponse(assets, sess.UserID),
	})
}

func assetsToResponse(assets []*entity.Asset, viewerID string) []dto.AssetResponse {
	responses := make([]dto.AssetResponse, 0, len(assets))
	for _, asset := range assets {
		resp := dto.AssetResponse{
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
			Owned:       asset.IsOwned(),
			OwnerUserID: asset.OwnerUserID,
			OwnedByMe:   asset.OwnerUserID != "" && asset.OwnerUserID == viewerID,
		}
		if asset.OwnerAvatarURL != nil {
			resp.OwnerAvatarURL = *asset.OwnerAvatarURL
		}
		responses = append(responses, resp)
	}
	return responses
}

func portfolioToResponse(portfolio *catalog.Portfolio) dto.PortfolioResponse {
	owned := make([]dto.OwnedAssetResponse, 0, len(portfolio.OwnedAssets))
	for _, record := range portfolio.OwnedAssets {
		owned = append(owned, dto.OwnedAssetResponse{
			AssetID:       record.AssetID,
			PurchasePrice: record.PurchasePrice,
			PurchaseDate:  record.PurchaseDate.Format(time.RFC3339),
		})
	}
	return dto.PortfolioResponse{
		OwnedAssets:     owned,
		PortfolioSize:   portfolio.PortfolioSize,
		TotalCoinsSpent: portfolio.TotalCoinsSpent,
	}
}
