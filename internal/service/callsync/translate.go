package callsync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/callhistory-backend/internal/domain"
	"github.com/heartmarshall/callhistory-backend/internal/metrics"
)

// TranslateReasons rewrites every stored disconnection code that has a
// Spanish label. Unrecognized values are left as they are.
// Returns the number of rows changed.
func (s *Service) TranslateReasons(ctx context.Context) (int, error) {
	reasons, err := s.calls.DistinctReasons(ctx)
	if err != nil {
		return 0, fmt.Errorf("list reasons: %w", err)
	}

	total := 0
	for _, code := range reasons {
		label, ok := domain.TranslateReason(code)
		if !ok {
			continue
		}

		n, err := s.calls.ReplaceReason(ctx, code, label)
		if err != nil {
			return total, fmt.Errorf("replace reason %q: %w", code, err)
		}
		total += n
	}

	metrics.RecordReasonsTranslated(total)
	s.log.InfoContext(ctx, "reasons translated", slog.Int("rows", total))

	return total, nil
}
