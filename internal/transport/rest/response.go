package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/callhistory-backend/internal/domain"
)

type errorResponse struct {
	Error  string       `json:"error"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps domain sentinels to HTTP statuses. Anything unrecognised
// is logged and hidden behind a 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		resp := errorResponse{Error: "validation error"}
		for _, fe := range verr.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrUpstream):
		log.WarnContext(r.Context(), "upstream failure", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "call platform unavailable")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// pathID parses the {id} path value.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}

// queryInt reads an optional integer query parameter, collecting a field
// error when it does not parse.
func queryInt(r *http.Request, name string, errs *[]domain.FieldError) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, domain.FieldError{Field: name, Message: "must be an integer"})
		return 0
	}
	return n
}

func queryBool(r *http.Request, name string, errs *[]domain.FieldError) bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		*errs = append(*errs, domain.FieldError{Field: name, Message: "must be a boolean"})
		return false
	}
	return b
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

type callResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Sequence            string     `json:"sequence"`
	ExternalID          string     `json:"external_id"`
	ContactName         string     `json:"contact_name"`
	Phone               string     `json:"phone"`
	Status              string     `json:"status"`
	Direction           string     `json:"direction"`
	CallDate            *time.Time `json:"call_date,omitempty"`
	DurationMS          int64      `json:"duration_ms"`
	DurationMinutes     float64    `json:"duration_minutes"`
	FromNumber          string     `json:"from_number,omitempty"`
	ToNumber            string     `json:"to_number,omitempty"`
	AgentName           string     `json:"agent_name"`
	DisconnectionReason string     `json:"disconnection_reason,omitempty"`
	Summary             string     `json:"summary"`
	Transcript          string     `json:"transcript"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func toCallResponse(c *domain.CallRecord) callResponse {
	return callResponse{
		ID:                  c.ID,
		Sequence:            c.Sequence,
		ExternalID:          c.ExternalID,
		ContactName:         c.ContactName,
		Phone:               c.Phone,
		Status:              c.Status.String(),
		Direction:           c.Direction.String(),
		CallDate:            c.CallDate,
		DurationMS:          c.DurationMS,
		DurationMinutes:     c.Duration,
		FromNumber:          c.FromNumber,
		ToNumber:            c.ToNumber,
		AgentName:           c.AgentName,
		DisconnectionReason: c.DisconnectionReason,
		Summary:             c.Summary,
		Transcript:          c.Transcript,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

type trashResponse struct {
	ID        uuid.UUID    `json:"id"`
	DeletedAt time.Time    `json:"deleted_at"`
	Call      callResponse `json:"call"`
}

func toTrashResponse(t *domain.TrashRecord) trashResponse {
	return trashResponse{
		ID:        t.ID,
		DeletedAt: t.DeletedAt,
		Call:      toCallResponse(&t.Call),
	}
}

type pageResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func writePage[T any](w http.ResponseWriter, items []T, total, limit, offset int) {
	if items == nil {
		items = []T{}
	}
	w.Header().Set("X-Total-Count", strconv.Itoa(total))
	writeJSON(w, http.StatusOK, pageResponse[T]{Items: items, Total: total, Limit: limit, Offset: offset})
}
