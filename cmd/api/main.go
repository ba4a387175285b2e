package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stepexplorer/server/internal/domain/usecase/catalog"
	"github.com/stepexplorer/server/internal/domain/usecase/leaderboard"
	"github.com/stepexplorer/server/internal/domain/usecase/profile"
	"github.com/stepexplorer/server/internal/domain/usecase/purchase"
	"github.com/stepexplorer/server/internal/domain/usecase/steps"

	coreport "github.com/stepexplorer/server/internal/domain/port/core"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/api/handler"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/api/routes"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/database"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/database/migration"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/logger"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/repository"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/tasks"
	timeProvider "github.com/stepexplorer/server/internal/infrastructure/adapter/time"
	"github.com/stepexplorer/server/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          "postgres",
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay / time.Second),
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations and seed the starter catalog
	if err := dbManager.MigrationManager().MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	if err := migration.SeedDefaultCatalog(context.Background(), dbManager.DB(), appLogger, tp); err != nil {
		appLogger.Error("Failed to seed default catalog", map[string]any{
			"error": err.Error(),
		})
	}

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(dbManager.DB(), appLogger, tp)
	assetRepo := repository.NewAssetRepository(dbManager.DB(), appLogger)
	userAssetRepo := repository.NewUserAssetRepository(dbManager.DB(), appLogger)
	unitOfWork := dbManager.CreateUnitOfWork()

	// Initialize use cases
	catalogLoader := catalog.NewLoader(assetRepo, userAssetRepo, appLogger)
	purchaseCoordinator := purchase.NewCoordinator(profileRepo, userAssetRepo, assetRepo, catalogLoader, tp, appLogger)
	leaderboardAggregator := leaderboard.NewAggregator(profileRepo, userAssetRepo, cfg.Leaderboard.CacheTTL, appLogger)
	stepSyncer := steps.NewSyncer(unitOfWork, cfg.Steps.StepsPerCoin, tp, appLogger)
	profileUseCase := profile.NewUseCase(profileRepo, cfg.Steps.StartingCoins, tp, appLogger)

	// Keep the leaderboard cache warm in the background
	refresher := tasks.NewLeaderboardRefresher(
		leaderboardAggregator,
		cfg.Leaderboard.RefreshSchedule,
		coreport.Duration(cfg.Leaderboard.RefreshTimeout),
		tp,
		appLogger,
	)
	if err := refresher.Start(); err != nil {
		appLogger.Error("Failed to start leaderboard refresher", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize API handlers
	catalogHandler := handler.NewCatalogHandler(catalogLoader, tp, appLogger)
	purchaseHandler := handler.NewPurchaseHandler(purchaseCoordinator, appLogger)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardAggregator, appLogger)
	stepsHandler := handler.NewStepsHandler(stepSyncer, appLogger)
	profileHandler := handler.NewProfileHandler(profileUseCase, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, catalogHandler, purchaseHandler, leaderboardHandler, stepsHandler, profileHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	refresher.Stop()

	// Drain in-flight requests before closing the purchase queues. A request
	// still inside the handler must be able to enqueue.
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	purchaseCoordinator.Shutdown()

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("SE_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or SE_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}
	if cfg.Database.Username == "" {
		if cfg.Environment == config.Production && os.Getenv("SE_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or SE_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}
	if cfg.Database.Password == "" {
		if cfg.Environment == config.Production && os.Getenv("SE_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or SE_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}
	if cfg.Database.Database == "" {
		if cfg.Environment == config.Production && os.Getenv("SE_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or SE_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Steps.StepsPerCoin <= 0 {
		missingConfigs = append(missingConfigs, "steps.stepsPerCoin")
	}
	if cfg.Leaderboard.CacheTTL == 0 {
		missingConfigs = append(missingConfigs, "leaderboard.cacheTTL")
	}
	if cfg.Leaderboard.RefreshSchedule == "" {
		missingConfigs = append(missingConfigs, "leaderboard.refreshSchedule")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
