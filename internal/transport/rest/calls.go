package rest

import (
	"context"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/callhistory-backend/internal/domain"
	"github.com/heartmarshall/callhistory-backend/internal/service/calls"
)

type callService interface {
	List(ctx context.Context, in calls.ListInput) ([]domain.CallRecord, int, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.CallRecord, error)
	Stats(ctx context.Context) (domain.CallStats, error)
	Agents(ctx context.Context) ([]string, error)
	ExportText(ctx context.Context, id uuid.UUID) (*calls.Export, error)
	Reclean(ctx context.Context, id uuid.UUID) (*domain.CallRecord, error)
}

type callArchiver interface {
	Delete(ctx context.Context, callID uuid.UUID) (*domain.TrashRecord, error)
}

// CallHandler serves the call history endpoints.
type CallHandler struct {
	calls callService
	trash callArchiver
	log   *slog.Logger
}

// NewCallHandler creates a CallHandler.
func NewCallHandler(calls callService, trash callArchiver, logger *slog.Logger) *CallHandler {
	return &CallHandler{
		calls: calls,
		trash: trash,
		log:   logger.With("handler", "calls"),
	}
}

// List returns a filtered page of calls.
// GET /api/v1/calls?status=&direction=&agent=&agents=&from=&to=&q=&missing_transcript=&limit=&offset=
// agents may be repeated; from and to take YYYY-MM-DD or RFC 3339.
func (h *CallHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var errs []domain.FieldError
	in := calls.ListInput{
		Status:            q.Get("status"),
		Direction:         q.Get("direction"),
		Agent:             q.Get("agent"),
		Agents:            q["agents"],
		Search:            q.Get("q"),
		From:              q.Get("from"),
		To:                q.Get("to"),
		MissingTranscript: queryBool(r, "missing_transcript", &errs),
		Limit:             queryInt(r, "limit", &errs),
		Offset:            queryInt(r, "offset", &errs),
	}
	if len(errs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(errs))
		return
	}

	records, total, err := h.calls.List(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]callResponse, 0, len(records))
	for i := range records {
		items = append(items, toCallResponse(&records[i]))
	}
	writePage(w, items, total, in.Limit, in.Offset)
}

// Agents returns the distinct agent names of the stored calls.
// GET /api/v1/calls/agents
func (h *CallHandler) Agents(w http.ResponseWriter, r *http.Request) {
	agents, err := h.calls.Agents(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if agents == nil {
		agents = []string{}
	}
	writeJSON(w, http.StatusOK, agentsResponse{Agents: agents})
}

type agentsResponse struct {
	Agents []string `json:"agents"`
}

// Get returns one call.
// GET /api/v1/calls/{id}
func (h *CallHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	call, err := h.calls.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCallResponse(call))
}

type statsResponse struct {
	Total          int `json:"total"`
	WithTranscript int `json:"with_transcript"`
	WithAgent      int `json:"with_agent"`
}

// Stats reports how complete the stored history is.
// GET /api/v1/calls/stats
func (h *CallHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.calls.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{
		Total:          stats.Total,
		WithTranscript: stats.WithTranscript,
		WithAgent:      stats.WithAgent,
	})
}

// Export downloads a call as a text document.
// GET /api/v1/calls/{id}/export
func (h *CallHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	export, err := h.calls.ExportText(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": export.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Body)))
	w.WriteHeader(http.StatusOK)
	w.Write(export.Body) //nolint:errcheck
}

// Delete moves a call to the trash and returns the snapshot.
// DELETE /api/v1/calls/{id}
func (h *CallHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := h.trash.Delete(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTrashResponse(rec))
}

// Reclean re-runs text normalization on the stored transcript.
// POST /api/v1/calls/{id}/reclean
func (h *CallHandler) Reclean(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	call, err := h.calls.Reclean(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCallResponse(call))
}
