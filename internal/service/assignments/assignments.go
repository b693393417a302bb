package assignments

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/callhistory-backend/internal/domain"
)

// Save validates the input and stores the assignment for the person. Every
// agent must appear in the call history.
func (s *Service) Save(ctx context.Context, in SaveInput) (*domain.AgentAssignment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	names := in.agentNames()
	if len(names) > 0 {
		known, err := s.agents.DistinctAgents(ctx)
		if err != nil {
			return nil, fmt.Errorf("list agents: %w", err)
		}
		if err := checkKnown(names, known); err != nil {
			return nil, err
		}
	}

	now := s.now()
	saved, err := s.assignments.Save(ctx, &domain.AgentAssignment{
		ID:         uuid.New(),
		Person:     strings.TrimSpace(in.Person),
		AgentNames: names,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("save assignment: %w", err)
	}

	s.log.InfoContext(ctx, "agents assigned",
		slog.String("assignment_id", saved.ID.String()),
		slog.String("person", saved.Person),
		slog.Int("agents", len(saved.AgentNames)),
	)
	return saved, nil
}

// List returns every assignment.
func (s *Service) List(ctx context.Context) ([]domain.AgentAssignment, error) {
	list, err := s.assignments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return list, nil
}

// Get returns one assignment.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.AgentAssignment, error) {
	return s.assignments.GetByID(ctx, id)
}

// Delete removes an assignment.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.assignments.Delete(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "assignment deleted", slog.String("assignment_id", id.String()))
	return nil
}

func checkKnown(names, known []string) error {
	set := make(map[string]struct{}, len(known))
	for _, k := range known {
		set[k] = struct{}{}
	}

	var errs []domain.FieldError
	for _, n := range names {
		if _, ok := set[n]; !ok {
			errs = append(errs, domain.FieldError{
				Field:   "agents",
				Message: fmt.Sprintf("agent %q not found in call history", n),
			})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
