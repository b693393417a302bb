package callsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/callhistory-backend/internal/domain"
	"github.com/heartmarshall/callhistory-backend/internal/metrics"
	"github.com/heartmarshall/callhistory-backend/internal/provider"
)

// Sync pulls every call from the platform and mirrors it locally, then
// backfills missing transcripts and agent names and translates disconnection
// reasons. A failed listing aborts the run; failed detail lookups are skipped.
func (s *Service) Sync(ctx context.Context) (SyncResult, error) {
	start := time.Now()

	result, err := s.sync(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.RecordSyncRun(status, time.Since(start).Seconds())

	return result, err
}

func (s *Service) sync(ctx context.Context) (SyncResult, error) {
	var result SyncResult

	s.log.InfoContext(ctx, "sync started")

	raw, err := s.fetchAll(ctx)
	if err != nil {
		return result, fmt.Errorf("fetch calls: %w", err)
	}
	result.Fetched = len(raw)

	for _, item := range raw {
		rec, ok := toCallRecord(item)
		if !ok {
			result.Skipped++
			continue
		}
		rec.CleanText()
		if rec.HasTranscript() {
			result.TranscriptsFound++
		}

		created, err := s.upsert(ctx, rec)
		if err != nil {
			return result, err
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}
	metrics.RecordSyncCalls(result.Created, result.Updated, result.Skipped)

	s.log.InfoContext(ctx, "sync basic pass done",
		slog.Int("fetched", result.Fetched),
		slog.Int("created", result.Created),
		slog.Int("updated", result.Updated),
		slog.Int("skipped", result.Skipped),
		slog.Int("with_transcript", result.TranscriptsFound),
	)

	transcripts, agents, err := s.backfill(ctx)
	if err != nil {
		return result, fmt.Errorf("backfill: %w", err)
	}
	result.BackfilledTranscripts = transcripts
	result.BackfilledAgents = agents

	agents, err = s.searchAgents(ctx)
	if err != nil {
		return result, fmt.Errorf("agent search: %w", err)
	}
	result.BackfilledAgents += agents

	translated, err := s.TranslateReasons(ctx)
	if err != nil {
		return result, fmt.Errorf("translate reasons: %w", err)
	}
	result.ReasonsTranslated = translated

	stats, err := s.calls.Stats(ctx)
	if err != nil {
		return result, fmt.Errorf("stats: %w", err)
	}
	result.Stats = stats

	s.log.InfoContext(ctx, "sync completed",
		slog.Int("total", stats.Total),
		slog.Int("created", result.Created),
		slog.Int("updated", result.Updated),
		slog.Int("with_transcript", stats.WithTranscript),
		slog.Int("with_agent", stats.WithAgent),
		slog.Int("backfilled_transcripts", result.BackfilledTranscripts),
		slog.Int("backfilled_agents", result.BackfilledAgents),
		slog.Int("reasons_translated", result.ReasonsTranslated),
	)

	return result, nil
}

// fetchAll follows next_cursor until the platform stops returning one.
func (s *Service) fetchAll(ctx context.Context) ([]provider.RawCall, error) {
	var (
		all    []provider.RawCall
		cursor string
		pages  int
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := s.source.ListCalls(ctx, cursor)
		if err != nil {
			return nil, err
		}
		pages++
		all = append(all, page.Calls...)

		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	s.log.DebugContext(ctx, "calls fetched", slog.Int("pages", pages), slog.Int("calls", len(all)))
	return all, nil
}

// upsert updates the call with the same external id or creates a new one.
// It reports whether a call was created. rec must already be cleaned.
func (s *Service) upsert(ctx context.Context, rec domain.CallRecord) (bool, error) {
	existing, err := s.calls.GetByExternalID(ctx, rec.ExternalID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if _, err := s.calls.Create(ctx, &rec); err != nil {
			return false, fmt.Errorf("create call %s: %w", rec.ExternalID, err)
		}
		return true, nil
	case err != nil:
		return false, fmt.Errorf("get call %s: %w", rec.ExternalID, err)
	}

	rec.ID = existing.ID
	rec.Sequence = existing.Sequence
	rec.CreatedAt = existing.CreatedAt
	if _, err := s.calls.Update(ctx, &rec); err != nil {
		return false, fmt.Errorf("update call %s: %w", rec.ExternalID, err)
	}
	return false, nil
}
