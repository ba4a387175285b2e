package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/stepexplorer/server/internal/domain/port/core"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/api/handler"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	catalogHandler *handler.CatalogHandler,
	purchaseHandler *handler.PurchaseHandler,
	leaderboardHandler *handler.LeaderboardHandler,
	stepsHandler *handler.StepsHandler,
	profileHandler *handler.ProfileHandler,
) {
	// All game routes require a resolved session
	authenticated := router.Group("/", middleware.Session())
	{
		// Catalog routes
		authenticated.GET("/catalog", catalogHandler.GetCatalog)
		authenticated.GET("/catalog/nearby", catalogHandler.GetNearby)

		// Asset purchase routes
		authenticated.POST("/assets/:assetId/purchase", purchaseHandler.PurchaseAsset)
		authenticated.POST("/assets/:assetId/list-for-sale", purchaseHandler.ListForSale)

		// Leaderboard
		authenticated.GET("/leaderboard", leaderboardHandler.GetLeaderboard)

		// Step synchronization
		authenticated.POST("/steps/sync", stepsHandler.SyncSteps)

		// Profile routes
		authenticated.GET("/profile", profileHandler.GetProfile)
		authenticated.GET("/profile/balance", profileHandler.GetBalance)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
