package calls

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/callhistory-backend/internal/domain"
	"sync"
)

var _ callRepo = &callRepoMock{}

type callRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.CallRecord, error)
	ListFunc              func(ctx context.Context, filter domain.CallFilter) ([]domain.CallRecord, int, error)
	StatsFunc             func(ctx context.Context) (domain.CallStats, error)
	DistinctAgentsFunc    func(ctx context.Context) ([]string, error)
	ReplaceTranscriptFunc func(ctx context.Context, id uuid.UUID, transcript string) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.CallFilter
		}
		Stats []struct {
			Ctx context.Context
		}
		DistinctAgents []struct {
			Ctx context.Context
		}
		ReplaceTranscript []struct {
			Ctx        context.Context
			ID         uuid.UUID
			Transcript string
		}
	}
	lockGetByID           sync.RWMutex
	lockList              sync.RWMutex
	lockStats             sync.RWMutex
	lockDistinctAgents    sync.RWMutex
	lockReplaceTranscript sync.RWMutex
}

func (mock *callRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.CallRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("callRepoMock.GetByIDFunc: method is nil but callRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *callRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *callRepoMock) List(ctx context.Context, filter domain.CallFilter) ([]domain.CallRecord, int, error) {
	if mock.ListFunc == nil {
		panic("callRepoMock.ListFunc: method is nil but callRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.CallFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *callRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.CallFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *callRepoMock) Stats(ctx context.Context) (domain.CallStats, error) {
	if mock.StatsFunc == nil {
		panic("callRepoMock.StatsFunc: method is nil but callRepo.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *callRepoMock) StatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *callRepoMock) DistinctAgents(ctx context.Context) ([]string, error) {
	if mock.DistinctAgentsFunc == nil {
		panic("callRepoMock.DistinctAgentsFunc: method is nil but callRepo.DistinctAgents was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDistinctAgents.Lock()
	mock.calls.DistinctAgents = append(mock.calls.DistinctAgents, callInfo)
	mock.lockDistinctAgents.Unlock()
	return mock.DistinctAgentsFunc(ctx)
}

func (mock *callRepoMock) DistinctAgentsCalls() []struct {
	Ctx context.Context
} {
	mock.lockDistinctAgents.RLock()
	calls := mock.calls.DistinctAgents
	mock.lockDistinctAgents.RUnlock()
	return calls
}

func (mock *callRepoMock) ReplaceTranscript(ctx context.Context, id uuid.UUID, transcript string) error {
	if mock.ReplaceTranscriptFunc == nil {
		panic("callRepoMock.ReplaceTranscriptFunc: method is nil but callRepo.ReplaceTranscript was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ID         uuid.UUID
		Transcript string
	}{Ctx: ctx, ID: id, Transcript: transcript}
	mock.lockReplaceTranscript.Lock()
	mock.calls.ReplaceTranscript = append(mock.calls.ReplaceTranscript, callInfo)
	mock.lockReplaceTranscript.Unlock()
	return mock.ReplaceTranscriptFunc(ctx, id, transcript)
}

func (mock *callRepoMock) ReplaceTranscriptCalls() []struct {
	Ctx        context.Context
	ID         uuid.UUID
	Transcript string
} {
	mock.lockReplaceTranscript.RLock()
	calls := mock.calls.ReplaceTranscript
	mock.lockReplaceTranscript.RUnlock()
	return calls
}
