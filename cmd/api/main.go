package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agrimarket/negotiation-api/docs"
	"github.com/agrimarket/negotiation-api/internal/auth"
	"github.com/agrimarket/negotiation-api/internal/config"
	"github.com/agrimarket/negotiation-api/internal/database"
	"github.com/agrimarket/negotiation-api/internal/http/handler"
	"github.com/agrimarket/negotiation-api/internal/http/middleware"
	"github.com/agrimarket/negotiation-api/internal/http/router"
	"github.com/agrimarket/negotiation-api/internal/logger"
	"github.com/agrimarket/negotiation-api/internal/repository"
	"github.com/agrimarket/negotiation-api/internal/service"
	"go.uber.org/zap"
)

// @title AgriMarket Negotiation API
// @version 1.0
// @description Campaigns, bid negotiation and contract lifecycle for the farmer-buyer marketplace

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token identifying a farmer or buyer party

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description API key for back-office callers, combined with X-Party-ID and X-Party-Role
// @Security BearerAuth
// @Security ApiKeyAuth

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)

	// In staging/production secrets come from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("Error closing database", zap.Error(err))
		}
	}()

	if cfg.App.Environment == "development" {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to auto-migrate: %w", err)
		}
		log.Info("Database schema auto-migrated")
	}

	settings := service.Settings{
		DefaultQualityGrade: cfg.Negotiation.DefaultQualityGrade,
		MaxPageSize:         cfg.Negotiation.MaxPageSize,
	}

	// Repositories
	campaignRepo := repository.NewCampaignRepository(db)
	bidRepo := repository.NewBidRepository(db)
	bidEventRepo := repository.NewBidEventRepository(db)
	contractRepo := repository.NewContractRepository(db)
	stageEventRepo := repository.NewContractStageEventRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Services
	campaignService := service.NewCampaignService(campaignRepo, bidRepo, settings, log)
	contractService := service.NewContractService(db, contractRepo, stageEventRepo, notificationRepo, settings, log)
	negotiationService := service.NewNegotiationService(db, campaignRepo, bidRepo, bidEventRepo, notificationRepo, contractService, settings, log)
	projectionService := service.NewProjectionService(campaignRepo, bidRepo, contractRepo, log)
	notificationService := service.NewNotificationService(notificationRepo, settings, log)

	// Middleware
	authMiddleware := auth.NewMiddleware(&cfg.Auth, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Handlers
	campaignHandler := handler.NewCampaignHandler(campaignService, negotiationService, projectionService, log)
	bidHandler := handler.NewBidHandler(negotiationService, contractService, log)
	contractHandler := handler.NewContractHandler(contractService, log)
	partyHandler := handler.NewPartyHandler(projectionService, log)
	notificationHandler := handler.NewNotificationHandler(notificationService, log)

	rt := router.NewRouter(
		cfg,
		log,
		db,
		authMiddleware,
		rateLimiter,
		campaignHandler,
		bidHandler,
		contractHandler,
		partyHandler,
		notificationHandler,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
