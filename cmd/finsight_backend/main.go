package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/finsight_dashboard/internal/adapters/gemini"
	"github.com/SscSPs/finsight_dashboard/internal/core/ports/gateways"
	"github.com/SscSPs/finsight_dashboard/internal/core/services"
	"github.com/SscSPs/finsight_dashboard/internal/dto"
	"github.com/SscSPs/finsight_dashboard/internal/handlers"
	"github.com/SscSPs/finsight_dashboard/internal/middleware"
	"github.com/SscSPs/finsight_dashboard/internal/platform/config"
	"github.com/SscSPs/finsight_dashboard/internal/repositories/memory"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title FinSight Dashboard API
// @version 1.0
// @description Personal finance dashboard: metrics, transactions table, audit trail and AI insights.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	repos := memory.NewRepositoryProvider()

	// Leave the model interface nil without a key so AI features use their fallbacks
	var model gateways.LanguageModel
	if cfg.HasAIKey() {
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			logger.Error("Failed to create Gemini client, AI features disabled", slog.String("error", err.Error()))
		} else {
			model = client
		}
	} else {
		logger.Warn("No Gemini API key configured, AI features disabled")
	}

	serviceContainer := services.NewServiceContainer(cfg, repos, model)

	if cfg.LoadDemoOnStart {
		txs, err := serviceContainer.Ledger.LoadDemo(ctx)
		if err != nil {
			logger.Error("Failed to load demo data", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Demo data loaded", slog.Int("transactions", len(txs)))
	}

	if err := dto.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	aiLimiter, err := middleware.NewRateLimiter(cfg.AIRateLimit)
	if err != nil {
		logger.Error("Invalid AI rate limit", slog.String("rate", cfg.AIRateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, aiLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
