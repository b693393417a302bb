// Package callsync mirrors the remote call history into local storage.
package callsync

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/callhistory-backend/internal/domain"
	"github.com/heartmarshall/callhistory-backend/internal/provider"
)

type callRepo interface {
	GetByExternalID(ctx context.Context, externalID string) (*domain.CallRecord, error)
	Create(ctx context.Context, call *domain.CallRecord) (*domain.CallRecord, error)
	Update(ctx context.Context, call *domain.CallRecord) (*domain.CallRecord, error)
	ListIncomplete(ctx context.Context) ([]domain.CallRecord, error)
	ListMissingAgent(ctx context.Context) ([]domain.CallRecord, error)
	SetTranscript(ctx context.Context, id uuid.UUID, transcript string) (bool, error)
	SetAgent(ctx context.Context, id uuid.UUID, agentName string) (bool, error)
	DistinctReasons(ctx context.Context) ([]string, error)
	ReplaceReason(ctx context.Context, from, to string) (int, error)
	Stats(ctx context.Context) (domain.CallStats, error)
}

type callSource interface {
	ListCalls(ctx context.Context, cursor string) (provider.CallPage, error)
	GetCall(ctx context.Context, callID string) (provider.RawCall, error)
}

// Service synchronizes calls from the telephony platform.
type Service struct {
	calls  callRepo
	source callSource
	log    *slog.Logger
}

// NewService creates a new call sync service.
func NewService(
	log *slog.Logger,
	calls callRepo,
	source callSource,
) *Service {
	return &Service{
		calls:  calls,
		source: source,
		log:    log.With("service", "callsync"),
	}
}

// SyncResult summarises one sync run.
type SyncResult struct {
	Fetched               int
	Created               int
	Updated               int
	Skipped               int
	TranscriptsFound      int
	BackfilledTranscripts int
	BackfilledAgents      int
	ReasonsTranslated     int
	Stats                 domain.CallStats
}
