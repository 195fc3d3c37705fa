package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/impact_api/internal/adapters/ecb"
	"github.com/SscSPs/impact_api/internal/core/services"
	"github.com/SscSPs/impact_api/internal/handlers"
	"github.com/SscSPs/impact_api/internal/middleware"
	"github.com/SscSPs/impact_api/internal/platform/config"
	"github.com/SscSPs/impact_api/internal/repositories/database/pgsql"
	"github.com/SscSPs/impact_api/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Impact API
// @version 1.0
// @description Charity cost-effectiveness evaluations and fund grants, converted to historical currencies.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	logger.Info("Running database migrations...")
	applied, err := database.RunMigrations(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	rates := services.NewRateTableService(ecb.NewSource(cfg.RateTableURL, cfg.RateTableDir, cfg.RateFetchTimeout))

	// Warm the rate table so the first request does not pay for the download. A
	// failure here is retried on the next request.
	if table, err := rates.RefreshIfStale(context.Background()); err != nil {
		logger.Warn("Failed to warm exchange rate table", slog.String("error", err.Error()))
	} else {
		logger.Info("Exchange rate table loaded", slog.Int("days", table.Len()), slog.Int("currencies", len(table.Currencies())))
	}

	serviceContainer := services.NewServiceContainer(services.ContainerConfig{
		MaxLookbackDays:    cfg.RateMaxLookbackDays,
		SupportedLanguages: cfg.SupportedLanguages,
	}, repos, rates)

	limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.RouteOptions{Limiter: limiterInstance})

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
