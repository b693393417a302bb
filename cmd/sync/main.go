// Command sync performs one full call sync against the call platform and
// prints the summary. Unlike scheduled runs, any failure ends the process
// with a non-zero exit code, so it can be driven by an external cron.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/callhistory-backend/internal/adapter/postgres"
	"github.com/heartmarshall/callhistory-backend/internal/app"
	"github.com/heartmarshall/callhistory-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := cfg.Retell.RequireAPIKey(); err != nil {
		log.Fatalf("retell: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Sync.Timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := app.NewServices(logger, cfg, pool)

	res, err := svc.Sync.Sync(ctx)
	if err != nil {
		logger.Error("sync failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("sync completed",
		slog.Int("fetched", res.Fetched),
		slog.Int("created", res.Created),
		slog.Int("updated", res.Updated),
		slog.Int("skipped", res.Skipped),
		slog.Int("transcripts_found", res.TranscriptsFound),
		slog.Int("backfilled_transcripts", res.BackfilledTranscripts),
		slog.Int("backfilled_agents", res.BackfilledAgents),
		slog.Int("reasons_translated", res.ReasonsTranslated),
		slog.Int("total", res.Stats.Total),
		slog.Int("with_transcript", res.Stats.WithTranscript),
		slog.Int("with_agent", res.Stats.WithAgent),
	)
}
