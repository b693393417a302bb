package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/callhistory-backend/internal/domain"
	"github.com/heartmarshall/callhistory-backend/internal/service/assignments"
)

type assignmentService interface {
	List(ctx context.Context) ([]domain.AgentAssignment, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.AgentAssignment, error)
	Save(ctx context.Context, in assignments.SaveInput) (*domain.AgentAssignment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AssignmentHandler manages which agents each person is responsible for.
type AssignmentHandler struct {
	svc assignmentService
	log *slog.Logger
}

// NewAssignmentHandler creates an AssignmentHandler.
func NewAssignmentHandler(svc assignmentService, logger *slog.Logger) *AssignmentHandler {
	return &AssignmentHandler{svc: svc, log: logger.With("handler", "assignments")}
}

type saveAssignmentRequest struct {
	Person string   `json:"person"`
	Agents []string `json:"agents"`
}

type assignmentResponse struct {
	ID            uuid.UUID `json:"id"`
	Person        string    `json:"person"`
	Agents        []string  `json:"agents"`
	AgentsDisplay string    `json:"agents_display"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toAssignmentResponse(a *domain.AgentAssignment) assignmentResponse {
	agents := a.AgentNames
	if agents == nil {
		agents = []string{}
	}
	return assignmentResponse{
		ID:            a.ID,
		Person:        a.Person,
		Agents:        agents,
		AgentsDisplay: a.AgentNamesDisplay(),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// List returns every assignment ordered by person.
// GET /api/v1/agent-assignments
func (h *AssignmentHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]assignmentResponse, 0, len(list))
	for i := range list {
		items = append(items, toAssignmentResponse(&list[i]))
	}
	writeJSON(w, http.StatusOK, map[string][]assignmentResponse{"items": items})
}

// Get returns one assignment.
// GET /api/v1/agent-assignments/{id}
func (h *AssignmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssignmentResponse(a))
}

// Save creates the assignment for a person or replaces their agents.
// POST /api/v1/agent-assignments
func (h *AssignmentHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.svc.Save(r.Context(), assignments.SaveInput{
		Person: req.Person,
		Agents: req.Agents,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssignmentResponse(a))
}

// Delete removes an assignment.
// DELETE /api/v1/agent-assignments/{id}
func (h *AssignmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
