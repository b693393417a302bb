package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/heartmarshall/callhistory-backend/internal/service/callsync"
)

type syncJob interface {
	Sync(ctx context.Context) (callsync.SyncResult, error)
}

type sweepJob interface {
	Sweep(ctx context.Context) (int, error)
}

// SchedulerConfig holds the cron expressions for the periodic jobs. An empty
// SyncSchedule disables the sync job.
type SchedulerConfig struct {
	SyncSchedule  string
	SyncTimeout   time.Duration
	SweepSchedule string
}

// Scheduler runs the periodic call sync and trash sweep in-process. Jobs of
// the same kind never overlap; a run still in progress makes the next tick
// a no-op. Job failures are logged, never propagated.
type Scheduler struct {
	cron  *cron.Cron
	log   *slog.Logger
	cfg   SchedulerConfig
	sync  syncJob
	sweep sweepJob
	now   func() time.Time

	mu          sync.Mutex
	lastSyncAt  time.Time
	lastSyncErr error
}

// NewScheduler creates a Scheduler. syncer may be nil when syncing is
// disabled.
func NewScheduler(logger *slog.Logger, cfg SchedulerConfig, syncer syncJob, sweeper sweepJob) *Scheduler {
	log := logger.With("component", "scheduler")
	cl := cronLogger{log: log}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		log:   log,
		cfg:   cfg,
		sync:  syncer,
		sweep: sweeper,
		now:   time.Now,
	}
}

// Run registers the jobs, starts the cron loop and blocks until ctx is
// cancelled. Jobs receive ctx, so shutdown aborts a run in progress; Run
// waits for it to return before exiting.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.sync != nil && s.cfg.SyncSchedule != "" {
		if _, err := s.cron.AddFunc(s.cfg.SyncSchedule, func() { s.RunSync(ctx) }); err != nil {
			return fmt.Errorf("scheduler: sync schedule %q: %w", s.cfg.SyncSchedule, err)
		}
	}
	if _, err := s.cron.AddFunc(s.cfg.SweepSchedule, func() { s.RunSweep(ctx) }); err != nil {
		return fmt.Errorf("scheduler: sweep schedule %q: %w", s.cfg.SweepSchedule, err)
	}

	s.cron.Start()
	s.log.InfoContext(ctx, "scheduler started",
		slog.String("sync_schedule", s.cfg.SyncSchedule),
		slog.String("sweep_schedule", s.cfg.SweepSchedule),
	)

	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
	return nil
}

// RunSync performs one sync bounded by the configured timeout and records
// its outcome for LastSync.
func (s *Scheduler) RunSync(ctx context.Context) {
	if s.cfg.SyncTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.SyncTimeout)
		defer cancel()
	}

	res, err := s.sync.Sync(ctx)

	s.mu.Lock()
	s.lastSyncAt = s.now()
	s.lastSyncErr = err
	s.mu.Unlock()

	if err != nil {
		s.log.ErrorContext(ctx, "scheduled sync failed", slog.String("error", err.Error()))
		return
	}
	s.log.InfoContext(ctx, "scheduled sync finished",
		slog.Int("created", res.Created),
		slog.Int("updated", res.Updated),
		slog.Int("backfilled_transcripts", res.BackfilledTranscripts),
		slog.Int("backfilled_agents", res.BackfilledAgents),
	)
}

// RunSweep purges expired trash snapshots.
func (s *Scheduler) RunSweep(ctx context.Context) {
	n, err := s.sweep.Sweep(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "scheduled trash sweep failed", slog.String("error", err.Error()))
		return
	}
	s.log.InfoContext(ctx, "scheduled trash sweep finished", slog.Int("purged", n))
}

// LastSync reports when the last scheduled sync finished and its error.
// The zero time means none has finished yet.
func (s *Scheduler) LastSync() (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSyncAt, s.lastSyncErr
}

// cronLogger routes cron's own logging into slog. Routine scheduling
// chatter goes to debug.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
