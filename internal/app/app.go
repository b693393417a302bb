package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/callhistory-backend/internal/adapter/postgres"
	"github.com/heartmarshall/callhistory-backend/internal/config"
	"github.com/heartmarshall/callhistory-backend/internal/transport/middleware"
	"github.com/heartmarshall/callhistory-backend/internal/transport/rest"
	"github.com/heartmarshall/callhistory-backend/migrations"
)

// Options tweak a server start.
type Options struct {
	// Migrate applies pending migrations before serving.
	Migrate bool
}

// Run is the server entry point. It loads configuration, connects to the
// database, serves HTTP and runs the scheduler until ctx is cancelled, then
// shuts both down gracefully.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("sync_enabled", cfg.Sync.Enabled),
	)

	if opts.Migrate {
		applied, err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", slog.Any("versions", applied))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	svc := NewServices(logger, cfg, pool)

	var syncer syncJob
	schedCfg := SchedulerConfig{SweepSchedule: cfg.Trash.SweepSchedule}
	if cfg.Sync.Enabled {
		syncer = svc.Sync
		schedCfg.SyncSchedule = cfg.Sync.Schedule
		schedCfg.SyncTimeout = cfg.Sync.Timeout
	}
	scheduler := NewScheduler(logger, schedCfg, syncer, svc.Trash)

	health := rest.NewHealthHandler(pool, nil, Version)
	if cfg.Sync.Enabled {
		health = rest.NewHealthHandler(pool, scheduler, Version)
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := newRouter(logger, cfg, handlers{
		health:      health,
		calls:       rest.NewCallHandler(svc.Calls, svc.Trash, logger),
		sync:        rest.NewSyncHandler(svc.Sync, logger),
		trash:       rest.NewTrashHandler(svc.Trash, logger),
		preview:     rest.NewPreviewHandler(svc.Preview, cfg.Preview.MaxUploadBytes, logger),
		assignments: rest.NewAssignmentHandler(svc.Assignments, logger),
	}, svc.Tokens, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return scheduler.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}
