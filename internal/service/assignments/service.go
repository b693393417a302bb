// Package assignments links people to the call agents working for them.
package assignments

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/callhistory-backend/internal/domain"
)

type assignmentRepo interface {
	Save(ctx context.Context, a *domain.AgentAssignment) (*domain.AgentAssignment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AgentAssignment, error)
	List(ctx context.Context) ([]domain.AgentAssignment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type agentLister interface {
	DistinctAgents(ctx context.Context) ([]string, error)
}

// Service manages agent assignments.
type Service struct {
	log         *slog.Logger
	assignments assignmentRepo
	agents      agentLister
	now         func() time.Time
}

// NewService creates a new assignment service. Agent names are checked
// against those found in the stored calls.
func NewService(logger *slog.Logger, assignments assignmentRepo, agents agentLister) *Service {
	return &Service{
		log:         logger.With("service", "assignments"),
		assignments: assignments,
		agents:      agents,
		now:         func() time.Time { return time.Now().UTC() },
	}
}
