package router

import (
	"encoding/json"
	"net/http"

	"github.com/agrimarket/negotiation-api/internal/auth"
	"github.com/agrimarket/negotiation-api/internal/config"
	"github.com/agrimarket/negotiation-api/internal/database"
	"github.com/agrimarket/negotiation-api/internal/http/handler"
	"github.com/agrimarket/negotiation-api/internal/http/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/agrimarket/negotiation-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg                 *config.Config
	logger              *zap.Logger
	db                  *gorm.DB
	authMiddleware      *auth.Middleware
	rateLimiter         *middleware.RateLimiter
	campaignHandler     *handler.CampaignHandler
	bidHandler          *handler.BidHandler
	contractHandler     *handler.ContractHandler
	partyHandler        *handler.PartyHandler
	notificationHandler *handler.NotificationHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	campaignHandler *handler.CampaignHandler,
	bidHandler *handler.BidHandler,
	contractHandler *handler.ContractHandler,
	partyHandler *handler.PartyHandler,
	notificationHandler *handler.NotificationHandler,
) *Router {
	return &Router{
		cfg:                 cfg,
		logger:              logger,
		db:                  db,
		authMiddleware:      authMiddleware,
		rateLimiter:         rateLimiter,
		campaignHandler:     campaignHandler,
		bidHandler:          bidHandler,
		contractHandler:     contractHandler,
		partyHandler:        partyHandler,
		notificationHandler: notificationHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Liveness probe
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Database health with pool stats
	r.Get("/health/db", rt.databaseHealth)

	// Readiness probe
	r.Get("/health/ready", rt.readiness)

	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rt.authMiddleware.Authenticate)
		r.Use(rt.rateLimiter.Limit)
		r.Use(chimw.Timeout(rt.cfg.Server.RequestTimeoutDuration()))

		// Campaigns
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", rt.campaignHandler.List)
			r.Post("/", rt.campaignHandler.Create)
			r.Get("/{id}", rt.campaignHandler.GetByID)
			r.Put("/{id}", rt.campaignHandler.Update)
			r.Delete("/{id}", rt.campaignHandler.Delete)
			r.Get("/{id}/bids", rt.campaignHandler.GetWithBids)
			r.With(rt.rateLimiter.LimitActions).Post("/{id}/bids", rt.campaignHandler.SubmitBid)
			r.Get("/{id}/best-offer", rt.campaignHandler.GetBestOffer)
		})

		// Bids
		r.Route("/bids", func(r chi.Router) {
			r.Get("/", rt.bidHandler.List)
			r.Get("/{id}", rt.bidHandler.GetByID)
			r.Get("/{id}/history", rt.bidHandler.History)
			r.Get("/{id}/contract", rt.bidHandler.Contract)
			r.With(rt.rateLimiter.LimitActions).Post("/{id}/actions", rt.bidHandler.Act)
		})

		// Contracts
		r.Route("/contracts", func(r chi.Router) {
			r.Get("/", rt.contractHandler.List)
			r.Get("/{id}", rt.contractHandler.GetByID)
			r.Get("/{id}/history", rt.contractHandler.History)
			r.Post("/{id}/advance", rt.contractHandler.Advance)
			r.Post("/{id}/correct", rt.contractHandler.Correct)
		})

		// Party views
		r.Get("/parties/{partyId}/negotiations", rt.partyHandler.Negotiations)
		r.Get("/parties/{partyId}/contracts", rt.partyHandler.Contracts)
		r.Get("/me/negotiations", rt.partyHandler.Negotiations)
		r.Get("/me/contracts", rt.partyHandler.Contracts)
		r.Get("/stats", rt.partyHandler.Stats)

		// Notifications
		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", rt.notificationHandler.List)
			r.Get("/unread-count", rt.notificationHandler.UnreadCount)
			r.Put("/read-all", rt.notificationHandler.MarkAllAsRead)
			r.Put("/{id}/read", rt.notificationHandler.MarkAsRead)
		})
	})

	return r
}

func (rt *Router) databaseHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	stats, err := database.HealthCheckWithStats(rt.db)
	if err != nil {
		rt.logger.Error("Database health check failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "unhealthy",
			"error":   err.Error(),
			"service": "database",
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "healthy",
		"service": "database",
		"stats": map[string]interface{}{
			"max_open_connections": stats.MaxOpenConnections,
			"open_connections":     stats.OpenConnections,
			"in_use":               stats.InUse,
			"idle":                 stats.Idle,
			"wait_count":           stats.WaitCount,
			"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
		},
	})
}

func (rt *Router) readiness(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]interface{})
	status, code := "healthy", http.StatusOK

	if err := database.HealthCheck(rt.db); err != nil {
		rt.logger.Error("Database health check failed", zap.Error(err))
		checks["database"] = map[string]interface{}{"status": "unhealthy", "error": err.Error()}
		status, code = "unhealthy", http.StatusServiceUnavailable
	} else {
		checks["database"] = map[string]interface{}{"status": "healthy"}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status": status,
		"checks": checks,
	})
}
