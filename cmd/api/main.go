package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	adminUseCase "github.com/zukafarm/reward-engine/internal/domain/usecase/admin"
	approvalUseCase "github.com/zukafarm/reward-engine/internal/domain/usecase/approval"
	"github.com/zukafarm/reward-engine/internal/domain/usecase/authz"
	contentUseCase "github.com/zukafarm/reward-engine/internal/domain/usecase/content"
	engagementUseCase "github.com/zukafarm/reward-engine/internal/domain/usecase/engagement"
	impressionUseCase "github.com/zukafarm/reward-engine/internal/domain/usecase/impression"
	ledgerUseCase "github.com/zukafarm/reward-engine/internal/domain/usecase/ledger"
	quotaUseCase "github.com/zukafarm/reward-engine/internal/domain/usecase/quota"

	"github.com/zukafarm/reward-engine/internal/infrastructure/adapter/api/handler"
	"github.com/zukafarm/reward-engine/internal/infrastructure/adapter/api/routes"
	"github.com/zukafarm/reward-engine/internal/infrastructure/adapter/database"
	"github.com/zukafarm/reward-engine/internal/infrastructure/adapter/database/migration"
	"github.com/zukafarm/reward-engine/internal/infrastructure/adapter/logger"
	"github.com/zukafarm/reward-engine/internal/infrastructure/adapter/repository"
	timeProvider "github.com/zukafarm/reward-engine/internal/infrastructure/adapter/time"
	"github.com/zukafarm/reward-engine/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
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

	// Set Gin mode based on environment
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
		RetryDelay:      int(cfg.Database.RetryDelay.Seconds()),
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	conn, err := database.NewConnection(dbConfig, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			appLogger.Error("Failed to close database connection", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	// Run migrations
	migrationMgr := migration.NewMigrationManager(conn.DB, appLogger)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories. Counter repositories run outside the unit of
	// work; everything else is reached through it.
	quotaRepo := repository.NewQuotaRepository(conn.DB, tp, appLogger)
	impressionRepo := repository.NewImpressionRepository(conn.DB, tp, appLogger)
	contentRepo := repository.NewContentRepository(conn.DB, appLogger)
	roleRepo := repository.NewRoleRepository(conn.DB, tp, appLogger)

	// Unit of work (transaction manager)
	uow := database.NewUnitOfWork(conn.DB, appLogger, tp)

	// Initialize use cases
	ledgerService := ledgerUseCase.NewService(uow, tp, appLogger)

	quotaTracker := quotaUseCase.NewTracker(quotaRepo, entity.DailyLimits{
		Posts:    cfg.Limits.Posts,
		Likes:    cfg.Limits.Likes,
		Comments: cfg.Limits.Comments,
	}, tp, appLogger)

	capper := impressionUseCase.NewCapper(impressionRepo, contentRepo, cfg.Ads.DailyImpressionCap, tp, appLogger)

	gate := authz.NewGate(roleRepo, appLogger)

	stateMachine := approvalUseCase.NewStateMachine(uow, ledgerService, gate, approvalUseCase.Rewards{
		PostApproval: cfg.Rewards.PostApproval,
	}, tp, appLogger)

	recorder := engagementUseCase.NewRecorder(uow, quotaTracker, ledgerService, engagementUseCase.Rewards{
		Like:    cfg.Rewards.Like,
		Comment: cfg.Rewards.Comment,
		Share:   cfg.Rewards.Share,
	}, tp, appLogger)

	contentService := contentUseCase.NewService(contentRepo, quotaTracker, tp, appLogger)

	adminService := adminUseCase.NewService(uow, ledgerService, gate, tp, appLogger)

	// Initialize API handlers
	contentHandler := handler.NewContentHandler(contentService, appLogger)
	engagementHandler := handler.NewEngagementHandler(recorder, appLogger)
	accountHandler := handler.NewAccountHandler(ledgerService, quotaTracker, tp, appLogger)
	adHandler := handler.NewAdHandler(capper, appLogger)
	adminHandler := handler.NewAdminHandler(adminService, stateMachine, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, contentHandler, engagementHandler, accountHandler, adHandler, adminHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
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

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

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
		missingConfigs = append(missingConfigs, "database.host (or ZF_DB_HOST environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or ZF_DB_USERNAME environment variable)")
	}
	if cfg.Database.Password == "" {
		missingConfigs = append(missingConfigs, "database.password (or ZF_DB_PASSWORD environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or ZF_DB_NAME environment variable)")
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Limits.Posts <= 0 {
		missingConfigs = append(missingConfigs, "limits.posts")
	}
	if cfg.Limits.Likes <= 0 {
		missingConfigs = append(missingConfigs, "limits.likes")
	}
	if cfg.Limits.Comments <= 0 {
		missingConfigs = append(missingConfigs, "limits.comments")
	}
	if cfg.Ads.DailyImpressionCap <= 0 {
		missingConfigs = append(missingConfigs, "ads.dailyImpressionCap")
	}
	if cfg.Rewards.Like < 0 || cfg.Rewards.Comment < 0 || cfg.Rewards.Share < 0 || cfg.Rewards.PostApproval < 0 {
		return fmt.Errorf("reward amounts must be non-negative")
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

	return nil
}
