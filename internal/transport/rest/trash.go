package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/callhistory-backend/internal/domain"
	"github.com/heartmarshall/callhistory-backend/internal/service/calltrash"
)

type trashService interface {
	List(ctx context.Context, in calltrash.ListInput) ([]domain.TrashRecord, int, error)
	Get(ctx context.Context, trashID uuid.UUID) (*domain.TrashRecord, error)
	Restore(ctx context.Context, trashID uuid.UUID) (*domain.CallRecord, error)
	Sweep(ctx context.Context) (int, error)
}

// TrashHandler serves the deleted-calls archive.
type TrashHandler struct {
	trash trashService
	log   *slog.Logger
}

// NewTrashHandler creates a TrashHandler.
func NewTrashHandler(trash trashService, logger *slog.Logger) *TrashHandler {
	return &TrashHandler{trash: trash, log: logger.With("handler", "trash")}
}

// List pages through trashed calls, newest first.
// GET /api/v1/trash?limit=&offset=
func (h *TrashHandler) List(w http.ResponseWriter, r *http.Request) {
	var errs []domain.FieldError
	in := calltrash.ListInput{
		Limit:  queryInt(r, "limit", &errs),
		Offset: queryInt(r, "offset", &errs),
	}
	if len(errs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(errs))
		return
	}

	records, total, err := h.trash.List(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]trashResponse, 0, len(records))
	for i := range records {
		items = append(items, toTrashResponse(&records[i]))
	}
	writePage(w, items, total, in.Limit, in.Offset)
}

// Get returns one trash snapshot.
// GET /api/v1/trash/{id}
func (h *TrashHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := h.trash.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTrashResponse(rec))
}

// Restore recreates the call from a snapshot. A call with the same external
// id answers 409 and leaves the snapshot in place.
// POST /api/v1/trash/{id}/restore
func (h *TrashHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	call, err := h.trash.Restore(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCallResponse(call))
}

// Sweep purges snapshots past the retention window.
// POST /api/v1/trash/sweep
func (h *TrashHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	n, err := h.trash.Sweep(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"purged": n})
}
