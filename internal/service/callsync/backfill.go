package callsync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/callhistory-backend/internal/domain"
	"github.com/heartmarshall/callhistory-backend/internal/metrics"
	"github.com/heartmarshall/callhistory-backend/internal/provider"
)

// backfill looks up the detail of every call missing a transcript or an
// agent name and fills only the empty fields.
func (s *Service) backfill(ctx context.Context) (transcripts, agents int, err error) {
	incomplete, err := s.calls.ListIncomplete(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("list incomplete calls: %w", err)
	}

	s.log.InfoContext(ctx, "backfill started", slog.Int("calls", len(incomplete)))

	for _, call := range incomplete {
		if err := ctx.Err(); err != nil {
			return transcripts, agents, err
		}

		detail, ok := s.detail(ctx, call.ExternalID)
		if !ok {
			continue
		}

		if !call.HasTranscript() {
			if v, _, found := transcriptPolicy.Find(detail); found {
				if s.fill(ctx, call, "transcript", domain.CleanText(flattenText(v)), s.calls.SetTranscript) {
					transcripts++
				}
			}
		}

		if !call.HasAgent() {
			if v, _, found := agentPolicy.Find(detail); found {
				if s.fill(ctx, call, "agent_name", stringValue(v), s.calls.SetAgent) {
					agents++
				}
			}
		}
	}

	return transcripts, agents, nil
}

// searchAgents repeats the detail lookup for every call still without an
// agent name.
func (s *Service) searchAgents(ctx context.Context) (int, error) {
	missing, err := s.calls.ListMissingAgent(ctx)
	if err != nil {
		return 0, fmt.Errorf("list calls missing agent: %w", err)
	}

	s.log.InfoContext(ctx, "agent search started", slog.Int("calls", len(missing)))

	found := 0
	for _, call := range missing {
		if err := ctx.Err(); err != nil {
			return found, err
		}

		detail, ok := s.detail(ctx, call.ExternalID)
		if !ok {
			continue
		}

		v, path, ok := agentPolicy.Find(detail)
		if !ok {
			s.log.DebugContext(ctx, "no agent in call detail",
				slog.String("call_id", call.ExternalID),
				slog.Any("keys", sortedKeys(detail)),
			)
			continue
		}

		if s.fill(ctx, call, "agent_name", stringValue(v), s.calls.SetAgent) {
			found++
			s.log.DebugContext(ctx, "agent found",
				slog.String("call_id", call.ExternalID),
				slog.String("path", path),
			)
		}
	}

	return found, nil
}

// detail fetches one call's detail. Failures are logged and reported as !ok.
func (s *Service) detail(ctx context.Context, externalID string) (provider.RawCall, bool) {
	if externalID == "" {
		return nil, false
	}

	detail, err := s.source.GetCall(ctx, externalID)
	if err != nil {
		metrics.RecordDetailError()
		s.log.WarnContext(ctx, "call detail lookup failed",
			slog.String("call_id", externalID),
			slog.String("error", err.Error()),
		)
		return nil, false
	}
	return detail, true
}

type setFunc func(ctx context.Context, id uuid.UUID, value string) (bool, error)

// fill writes value through set when non-empty and reports whether the row
// changed. Storage errors are logged and skipped like lookup errors.
func (s *Service) fill(ctx context.Context, call domain.CallRecord, field, value string, set setFunc) bool {
	if value == "" {
		return false
	}

	changed, err := set(ctx, call.ID, value)
	if err != nil {
		s.log.WarnContext(ctx, "backfill write failed",
			slog.String("call_id", call.ExternalID),
			slog.String("field", field),
			slog.String("error", err.Error()),
		)
		return false
	}
	if changed {
		metrics.RecordBackfill(field)
	}
	return changed
}
