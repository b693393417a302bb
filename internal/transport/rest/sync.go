package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/callhistory-backend/internal/service/callsync"
	"github.com/heartmarshall/callhistory-backend/pkg/ctxutil"
)

type syncRunner interface {
	Sync(ctx context.Context) (callsync.SyncResult, error)
	TranslateReasons(ctx context.Context) (int, error)
}

// SyncHandler triggers manual syncs. Unlike scheduled runs, failures are
// reported to the caller.
type SyncHandler struct {
	sync syncRunner
	log  *slog.Logger
}

// NewSyncHandler creates a SyncHandler.
func NewSyncHandler(sync syncRunner, logger *slog.Logger) *SyncHandler {
	return &SyncHandler{sync: sync, log: logger.With("handler", "sync")}
}

type syncResponse struct {
	Fetched               int           `json:"fetched"`
	Created               int           `json:"created"`
	Updated               int           `json:"updated"`
	Skipped               int           `json:"skipped"`
	TranscriptsFound      int           `json:"transcripts_found"`
	BackfilledTranscripts int           `json:"backfilled_transcripts"`
	BackfilledAgents      int           `json:"backfilled_agents"`
	ReasonsTranslated     int           `json:"reasons_translated"`
	Stats                 statsResponse `json:"stats"`
}

// Sync runs a full sync against the call platform.
// POST /api/v1/calls/sync
func (h *SyncHandler) Sync(w http.ResponseWriter, r *http.Request) {
	operator, _ := ctxutil.OperatorFromCtx(r.Context())
	h.log.InfoContext(r.Context(), "manual sync requested", slog.String("operator", operator))

	res, err := h.sync.Sync(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, syncResponse{
		Fetched:               res.Fetched,
		Created:               res.Created,
		Updated:               res.Updated,
		Skipped:               res.Skipped,
		TranscriptsFound:      res.TranscriptsFound,
		BackfilledTranscripts: res.BackfilledTranscripts,
		BackfilledAgents:      res.BackfilledAgents,
		ReasonsTranslated:     res.ReasonsTranslated,
		Stats: statsResponse{
			Total:          res.Stats.Total,
			WithTranscript: res.Stats.WithTranscript,
			WithAgent:      res.Stats.WithAgent,
		},
	})
}

// TranslateReasons rewrites stored disconnection reason codes as labels.
// POST /api/v1/calls/translate-reasons
func (h *SyncHandler) TranslateReasons(w http.ResponseWriter, r *http.Request) {
	n, err := h.sync.TranslateReasons(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"translated": n})
}
