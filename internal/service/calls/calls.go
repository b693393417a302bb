package calls

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/callhistory-backend/internal/domain"
)

// exportDateLayout renders call dates in the plain-text export.
const exportDateLayout = "2006-01-02 15:04:05"

// List returns calls matching the input plus the total number of matches.
func (s *Service) List(ctx context.Context, in ListInput) ([]domain.CallRecord, int, error) {
	if err := in.Validate(); err != nil {
		return nil, 0, err
	}

	calls, total, err := s.calls.List(ctx, in.filter())
	if err != nil {
		return nil, 0, fmt.Errorf("list calls: %w", err)
	}
	return calls, total, nil
}

// Get returns one call.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.CallRecord, error) {
	return s.calls.GetByID(ctx, id)
}

// Stats reports how complete the stored history is.
func (s *Service) Stats(ctx context.Context) (domain.CallStats, error) {
	return s.calls.Stats(ctx)
}

// Agents returns the distinct agent names found in the stored calls.
func (s *Service) Agents(ctx context.Context) ([]string, error) {
	agents, err := s.calls.DistinctAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	return agents, nil
}

// Export is a downloadable rendition of a call.
type Export struct {
	Filename string
	Body     []byte
}

// ExportText renders a call as a Spanish plain-text document named
// llamada_<sequence>.txt.
func (s *Service) ExportText(ctx context.Context, id uuid.UUID) (*Export, error) {
	call, err := s.calls.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Export{
		Filename: "llamada_" + call.Sequence + ".txt",
		Body:     []byte(renderText(call)),
	}, nil
}

func renderText(c *domain.CallRecord) string {
	date := ""
	if c.CallDate != nil {
		date = c.CallDate.UTC().Format(exportDateLayout)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Número de Llamada: %s\n", c.Sequence)
	fmt.Fprintf(&b, "Nombre: %s\n", c.ContactName)
	fmt.Fprintf(&b, "Teléfono: %s\n", c.Phone)
	fmt.Fprintf(&b, "Estado: %s\n", c.Status)
	fmt.Fprintf(&b, "Fecha y Hora: %s\n", date)
	fmt.Fprintf(&b, "Duración: %s minutos\n", strconv.FormatFloat(c.Duration, 'f', -1, 64))
	fmt.Fprintf(&b, "Descripción de la llamada: %s\n", c.Summary)
	fmt.Fprintf(&b, "Transcripción: %s", c.Transcript)
	return b.String()
}

// Reclean runs the stored transcript through the text normalizer again and
// saves it. Calls without a transcript are returned unchanged.
func (s *Service) Reclean(ctx context.Context, id uuid.UUID) (*domain.CallRecord, error) {
	call, err := s.calls.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !call.HasTranscript() {
		return call, nil
	}

	cleaned := domain.CleanText(call.Transcript)
	if cleaned == call.Transcript {
		return call, nil
	}

	s.log.DebugContext(ctx, "transcript recleaned",
		slog.String("call_id", id.String()),
		slog.Int("before", len(call.Transcript)),
		slog.Int("after", len(cleaned)),
	)

	if err := s.calls.ReplaceTranscript(ctx, id, cleaned); err != nil {
		return nil, fmt.Errorf("save transcript: %w", err)
	}
	call.Transcript = cleaned
	return call, nil
}
