package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/callhistory-backend/internal/domain"
	"github.com/heartmarshall/callhistory-backend/internal/service/calls"
	"sync"
)

var _ callService = &callServiceMock{}

type callServiceMock struct {
	ListFunc       func(ctx context.Context, in calls.ListInput) ([]domain.CallRecord, int, error)
	GetFunc        func(ctx context.Context, id uuid.UUID) (*domain.CallRecord, error)
	StatsFunc      func(ctx context.Context) (domain.CallStats, error)
	AgentsFunc     func(ctx context.Context) ([]string, error)
	ExportTextFunc func(ctx context.Context, id uuid.UUID) (*calls.Export, error)
	RecleanFunc    func(ctx context.Context, id uuid.UUID) (*domain.CallRecord, error)

	calls struct {
		List []struct {
			Ctx context.Context
			In  calls.ListInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Stats []struct {
			Ctx context.Context
		}
		Agents []struct {
			Ctx context.Context
		}
		ExportText []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Reclean []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList       sync.RWMutex
	lockGet        sync.RWMutex
	lockStats      sync.RWMutex
	lockAgents     sync.RWMutex
	lockExportText sync.RWMutex
	lockReclean    sync.RWMutex
}

func (mock *callServiceMock) List(ctx context.Context, in calls.ListInput) ([]domain.CallRecord, int, error) {
	if mock.ListFunc == nil {
		panic("callServiceMock.ListFunc: method is nil but callService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  calls.ListInput
	}{Ctx: ctx, In: in}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, in)
}

func (mock *callServiceMock) ListCalls() []struct {
	Ctx context.Context
	In  calls.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *callServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.CallRecord, error) {
	if mock.GetFunc == nil {
		panic("callServiceMock.GetFunc: method is nil but callService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *callServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *callServiceMock) Stats(ctx context.Context) (domain.CallStats, error) {
	if mock.StatsFunc == nil {
		panic("callServiceMock.StatsFunc: method is nil but callService.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *callServiceMock) StatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *callServiceMock) Agents(ctx context.Context) ([]string, error) {
	if mock.AgentsFunc == nil {
		panic("callServiceMock.AgentsFunc: method is nil but callService.Agents was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockAgents.Lock()
	mock.calls.Agents = append(mock.calls.Agents, callInfo)
	mock.lockAgents.Unlock()
	return mock.AgentsFunc(ctx)
}

func (mock *callServiceMock) AgentsCalls() []struct {
	Ctx context.Context
} {
	mock.lockAgents.RLock()
	calls := mock.calls.Agents
	mock.lockAgents.RUnlock()
	return calls
}

func (mock *callServiceMock) ExportText(ctx context.Context, id uuid.UUID) (*calls.Export, error) {
	if mock.ExportTextFunc == nil {
		panic("callServiceMock.ExportTextFunc: method is nil but callService.ExportText was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockExportText.Lock()
	mock.calls.ExportText = append(mock.calls.ExportText, callInfo)
	mock.lockExportText.Unlock()
	return mock.ExportTextFunc(ctx, id)
}

func (mock *callServiceMock) ExportTextCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockExportText.RLock()
	calls := mock.calls.ExportText
	mock.lockExportText.RUnlock()
	return calls
}

func (mock *callServiceMock) Reclean(ctx context.Context, id uuid.UUID) (*domain.CallRecord, error) {
	if mock.RecleanFunc == nil {
		panic("callServiceMock.RecleanFunc: method is nil but callService.Reclean was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockReclean.Lock()
	mock.calls.Reclean = append(mock.calls.Reclean, callInfo)
	mock.lockReclean.Unlock()
	return mock.RecleanFunc(ctx, id)
}

func (mock *callServiceMock) RecleanCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockReclean.RLock()
	calls := mock.calls.Reclean
	mock.lockReclean.RUnlock()
	return calls
}
