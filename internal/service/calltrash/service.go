// Package calltrash archives deleted calls and restores or purges them.
package calltrash

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/callhistory-backend/internal/domain"
)

// DefaultRetention is how long a deleted call stays restorable.
const DefaultRetention = 7 * 24 * time.Hour

type callRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CallRecord, error)
	Create(ctx context.Context, call *domain.CallRecord) (*domain.CallRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type trashRepo interface {
	Create(ctx context.Context, rec *domain.TrashRecord) (*domain.TrashRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TrashRecord, error)
	List(ctx context.Context, limit, offset int) ([]domain.TrashRecord, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteOlderThan(ctx context.Context, threshold time.Time) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service moves calls in and out of the trash.
type Service struct {
	log       *slog.Logger
	calls     callRepo
	trash     trashRepo
	tx        txManager
	retention time.Duration
	now       func() time.Time
}

// NewService creates a new trash service. A non-positive retention falls
// back to DefaultRetention.
func NewService(
	logger *slog.Logger,
	calls callRepo,
	trash trashRepo,
	tx txManager,
	retention time.Duration,
) *Service {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &Service{
		log:       logger.With("service", "calltrash"),
		calls:     calls,
		trash:     trash,
		tx:        tx,
		retention: retention,
		now:       func() time.Time { return time.Now().UTC() },
	}
}
