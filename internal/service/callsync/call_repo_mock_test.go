package callsync

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/callhistory-backend/internal/domain"
	"sync"
)

var _ callRepo = &callRepoMock{}

type callRepoMock struct {
	GetByExternalIDFunc  func(ctx context.Context, externalID string) (*domain.CallRecord, error)
	CreateFunc           func(ctx context.Context, call *domain.CallRecord) (*domain.CallRecord, error)
	UpdateFunc           func(ctx context.Context, call *domain.CallRecord) (*domain.CallRecord, error)
	ListIncompleteFunc   func(ctx context.Context) ([]domain.CallRecord, error)
	ListMissingAgentFunc func(ctx context.Context) ([]domain.CallRecord, error)
	SetTranscriptFunc    func(ctx context.Context, id uuid.UUID, transcript string) (bool, error)
	SetAgentFunc         func(ctx context.Context, id uuid.UUID, agentName string) (bool, error)
	DistinctReasonsFunc  func(ctx context.Context) ([]string, error)
	ReplaceReasonFunc    func(ctx context.Context, from string, to string) (int, error)
	StatsFunc            func(ctx context.Context) (domain.CallStats, error)

	calls struct {
		GetByExternalID []struct {
			Ctx        context.Context
			ExternalID string
		}
		Create []struct {
			Ctx  context.Context
			Call *domain.CallRecord
		}
		Update []struct {
			Ctx  context.Context
			Call *domain.CallRecord
		}
		ListIncomplete []struct {
			Ctx context.Context
		}
		ListMissingAgent []struct {
			Ctx context.Context
		}
		SetTranscript []struct {
			Ctx        context.Context
			ID         uuid.UUID
			Transcript string
		}
		SetAgent []struct {
			Ctx       context.Context
			ID        uuid.UUID
			AgentName string
		}
		DistinctReasons []struct {
			Ctx context.Context
		}
		ReplaceReason []struct {
			Ctx  context.Context
			From string
			To   string
		}
		Stats []struct {
			Ctx context.Context
		}
	}
	lockGetByExternalID  sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdate           sync.RWMutex
	lockListIncomplete   sync.RWMutex
	lockListMissingAgent sync.RWMutex
	lockSetTranscript    sync.RWMutex
	lockSetAgent         sync.RWMutex
	lockDistinctReasons  sync.RWMutex
	lockReplaceReason    sync.RWMutex
	lockStats            sync.RWMutex
}

func (mock *callRepoMock) GetByExternalID(ctx context.Context, externalID string) (*domain.CallRecord, error) {
	if mock.GetByExternalIDFunc == nil {
		panic("callRepoMock.GetByExternalIDFunc: method is nil but callRepo.GetByExternalID was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ExternalID string
	}{Ctx: ctx, ExternalID: externalID}
	mock.lockGetByExternalID.Lock()
	mock.calls.GetByExternalID = append(mock.calls.GetByExternalID, callInfo)
	mock.lockGetByExternalID.Unlock()
	return mock.GetByExternalIDFunc(ctx, externalID)
}

func (mock *callRepoMock) GetByExternalIDCalls() []struct {
	Ctx        context.Context
	ExternalID string
} {
	mock.lockGetByExternalID.RLock()
	calls := mock.calls.GetByExternalID
	mock.lockGetByExternalID.RUnlock()
	return calls
}

func (mock *callRepoMock) Create(ctx context.Context, call *domain.CallRecord) (*domain.CallRecord, error) {
	if mock.CreateFunc == nil {
		panic("callRepoMock.CreateFunc: method is nil but callRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Call *domain.CallRecord
	}{Ctx: ctx, Call: call}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, call)
}

func (mock *callRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Call *domain.CallRecord
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *callRepoMock) Update(ctx context.Context, call *domain.CallRecord) (*domain.CallRecord, error) {
	if mock.UpdateFunc == nil {
		panic("callRepoMock.UpdateFunc: method is nil but callRepo.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Call *domain.CallRecord
	}{Ctx: ctx, Call: call}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, call)
}

func (mock *callRepoMock) UpdateCalls() []struct {
	Ctx  context.Context
	Call *domain.CallRecord
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *callRepoMock) ListIncomplete(ctx context.Context) ([]domain.CallRecord, error) {
	if mock.ListIncompleteFunc == nil {
		panic("callRepoMock.ListIncompleteFunc: method is nil but callRepo.ListIncomplete was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListIncomplete.Lock()
	mock.calls.ListIncomplete = append(mock.calls.ListIncomplete, callInfo)
	mock.lockListIncomplete.Unlock()
	return mock.ListIncompleteFunc(ctx)
}

func (mock *callRepoMock) ListIncompleteCalls() []struct {
	Ctx context.Context
} {
	mock.lockListIncomplete.RLock()
	calls := mock.calls.ListIncomplete
	mock.lockListIncomplete.RUnlock()
	return calls
}

func (mock *callRepoMock) ListMissingAgent(ctx context.Context) ([]domain.CallRecord, error) {
	if mock.ListMissingAgentFunc == nil {
		panic("callRepoMock.ListMissingAgentFunc: method is nil but callRepo.ListMissingAgent was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListMissingAgent.Lock()
	mock.calls.ListMissingAgent = append(mock.calls.ListMissingAgent, callInfo)
	mock.lockListMissingAgent.Unlock()
	return mock.ListMissingAgentFunc(ctx)
}

func (mock *callRepoMock) ListMissingAgentCalls() []struct {
	Ctx context.Context
} {
	mock.lockListMissingAgent.RLock()
	calls := mock.calls.ListMissingAgent
	mock.lockListMissingAgent.RUnlock()
	return calls
}

func (mock *callRepoMock) SetTranscript(ctx context.Context, id uuid.UUID, transcript string) (bool, error) {
	if mock.SetTranscriptFunc == nil {
		panic("callRepoMock.SetTranscriptFunc: method is nil but callRepo.SetTranscript was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ID         uuid.UUID
		Transcript string
	}{Ctx: ctx, ID: id, Transcript: transcript}
	mock.lockSetTranscript.Lock()
	mock.calls.SetTranscript = append(mock.calls.SetTranscript, callInfo)
	mock.lockSetTranscript.Unlock()
	return mock.SetTranscriptFunc(ctx, id, transcript)
}

func (mock *callRepoMock) SetTranscriptCalls() []struct {
	Ctx        context.Context
	ID         uuid.UUID
	Transcript string
} {
	mock.lockSetTranscript.RLock()
	calls := mock.calls.SetTranscript
	mock.lockSetTranscript.RUnlock()
	return calls
}

func (mock *callRepoMock) SetAgent(ctx context.Context, id uuid.UUID, agentName string) (bool, error) {
	if mock.SetAgentFunc == nil {
		panic("callRepoMock.SetAgentFunc: method is nil but callRepo.SetAgent was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		AgentName string
	}{Ctx: ctx, ID: id, AgentName: agentName}
	mock.lockSetAgent.Lock()
	mock.calls.SetAgent = append(mock.calls.SetAgent, callInfo)
	mock.lockSetAgent.Unlock()
	return mock.SetAgentFunc(ctx, id, agentName)
}

func (mock *callRepoMock) SetAgentCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	AgentName string
} {
	mock.lockSetAgent.RLock()
	calls := mock.calls.SetAgent
	mock.lockSetAgent.RUnlock()
	return calls
}

func (mock *callRepoMock) DistinctReasons(ctx context.Context) ([]string, error) {
	if mock.DistinctReasonsFunc == nil {
		panic("callRepoMock.DistinctReasonsFunc: method is nil but callRepo.DistinctReasons was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDistinctReasons.Lock()
	mock.calls.DistinctReasons = append(mock.calls.DistinctReasons, callInfo)
	mock.lockDistinctReasons.Unlock()
	return mock.DistinctReasonsFunc(ctx)
}

func (mock *callRepoMock) DistinctReasonsCalls() []struct {
	Ctx context.Context
} {
	mock.lockDistinctReasons.RLock()
	calls := mock.calls.DistinctReasons
	mock.lockDistinctReasons.RUnlock()
	return calls
}

func (mock *callRepoMock) ReplaceReason(ctx context.Context, from string, to string) (int, error) {
	if mock.ReplaceReasonFunc == nil {
		panic("callRepoMock.ReplaceReasonFunc: method is nil but callRepo.ReplaceReason was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		From string
		To   string
	}{Ctx: ctx, From: from, To: to}
	mock.lockReplaceReason.Lock()
	mock.calls.ReplaceReason = append(mock.calls.ReplaceReason, callInfo)
	mock.lockReplaceReason.Unlock()
	return mock.ReplaceReasonFunc(ctx, from, to)
}

func (mock *callRepoMock) ReplaceReasonCalls() []struct {
	Ctx  context.Context
	From string
	To   string
} {
	mock.lockReplaceReason.RLock()
	calls := mock.calls.ReplaceReason
	mock.lockReplaceReason.RUnlock()
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
