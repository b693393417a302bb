// Package calls serves read access to stored calls plus the per-call
// operator actions.
package calls

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/callhistory-backend/internal/domain"
)

type callRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CallRecord, error)
	List(ctx context.Context, filter domain.CallFilter) ([]domain.CallRecord, int, error)
	Stats(ctx context.Context) (domain.CallStats, error)
	DistinctAgents(ctx context.Context) ([]string, error)
	ReplaceTranscript(ctx context.Context, id uuid.UUID, transcript string) error
}

// Service implements call browsing, export and re-cleaning.
type Service struct {
	log   *slog.Logger
	calls callRepo
}

// NewService creates a new calls service.
func NewService(logger *slog.Logger, calls callRepo) *Service {
	return &Service{
		log:   logger.With("service", "calls"),
		calls: calls,
	}
}
