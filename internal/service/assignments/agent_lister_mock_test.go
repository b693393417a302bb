package assignments

import (
	"context"
	"sync"
)

var _ agentLister = &agentListerMock{}

type agentListerMock struct {
	DistinctAgentsFunc func(ctx context.Context) ([]string, error)

	calls struct {
		DistinctAgents []struct {
			Ctx context.Context
		}
	}
	lockDistinctAgents sync.RWMutex
}

func (mock *agentListerMock) DistinctAgents(ctx context.Context) ([]string, error) {
	if mock.DistinctAgentsFunc == nil {
		panic("agentListerMock.DistinctAgentsFunc: method is nil but agentLister.DistinctAgents was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDistinctAgents.Lock()
	mock.calls.DistinctAgents = append(mock.calls.DistinctAgents, callInfo)
	mock.lockDistinctAgents.Unlock()
	return mock.DistinctAgentsFunc(ctx)
}

func (mock *agentListerMock) DistinctAgentsCalls() []struct {
	Ctx context.Context
} {
	mock.lockDistinctAgents.RLock()
	calls := mock.calls.DistinctAgents
	mock.lockDistinctAgents.RUnlock()
	return calls
}
