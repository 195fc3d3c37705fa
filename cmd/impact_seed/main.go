package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/impact_api/internal/platform/config"
	"github.com/SscSPs/impact_api/internal/repositories/database/pgsql"
	"github.com/SscSPs/impact_api/internal/seed"
	"github.com/SscSPs/impact_api/pkg/database"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	path := flag.String("file", "seed.yaml", "seed data file (yaml, json or toml)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	file, err := seed.Load(*path)
	if err != nil {
		logger.Error("Failed to load seed file", slog.String("error", err.Error()))
		os.Exit(1)
	}
	dataset, err := file.Resolve(time.Now())
	if err != nil {
		logger.Error("Seed file is invalid", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	if _, err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	if _, err := seed.Apply(ctx, logger, dataset, seed.Writers{
		Charities:   repos.CharityRepo,
		Evaluations: repos.EvaluationRepo,
		Grants:      repos.GrantRepo,
	}); err != nil {
		logger.Error("Failed to seed database", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
