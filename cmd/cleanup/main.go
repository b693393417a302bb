// Command cleanup purges trashed calls older than the configured retention
// window. It is the out-of-process counterpart of the scheduler's sweep job,
// meant for deployments that run with an external cron instead.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/callhistory-backend/internal/adapter/postgres"
	"github.com/heartmarshall/callhistory-backend/internal/app"
	"github.com/heartmarshall/callhistory-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := app.NewServices(logger, cfg, pool)

	purged, err := svc.Trash.Sweep(ctx)
	if err != nil {
		logger.Error("trash sweep failed",
			slog.String("error", err.Error()),
			slog.Int("retention_days", cfg.Trash.RetentionDays),
		)
		pool.Close()
		os.Exit(1)
	}

	logger.Info("trash sweep completed",
		slog.Int("purged", purged),
		slog.Int("retention_days", cfg.Trash.RetentionDays),
	)
}
