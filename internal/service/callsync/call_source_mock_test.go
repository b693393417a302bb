package callsync

import (
	"context"
	"github.com/heartmarshall/callhistory-backend/internal/provider"
	"sync"
)

var _ callSource = &callSourceMock{}

type callSourceMock struct {
	ListCallsFunc func(ctx context.Context, cursor string) (provider.CallPage, error)
	GetCallFunc   func(ctx context.Context, callID string) (provider.RawCall, error)

	calls struct {
		ListCalls []struct {
			Ctx    context.Context
			Cursor string
		}
		GetCall []struct {
			Ctx    context.Context
			CallID string
		}
	}
	lockListCalls sync.RWMutex
	lockGetCall   sync.RWMutex
}

func (mock *callSourceMock) ListCalls(ctx context.Context, cursor string) (provider.CallPage, error) {
	if mock.ListCallsFunc == nil {
		panic("callSourceMock.ListCallsFunc: method is nil but callSource.ListCalls was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Cursor string
	}{Ctx: ctx, Cursor: cursor}
	mock.lockListCalls.Lock()
	mock.calls.ListCalls = append(mock.calls.ListCalls, callInfo)
	mock.lockListCalls.Unlock()
	return mock.ListCallsFunc(ctx, cursor)
}

func (mock *callSourceMock) ListCallsCalls() []struct {
	Ctx    context.Context
	Cursor string
} {
	mock.lockListCalls.RLock()
	calls := mock.calls.ListCalls
	mock.lockListCalls.RUnlock()
	return calls
}

func (mock *callSourceMock) GetCall(ctx context.Context, callID string) (provider.RawCall, error) {
	if mock.GetCallFunc == nil {
		panic("callSourceMock.GetCallFunc: method is nil but callSource.GetCall was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CallID string
	}{Ctx: ctx, CallID: callID}
	mock.lockGetCall.Lock()
	mock.calls.GetCall = append(mock.calls.GetCall, callInfo)
	mock.lockGetCall.Unlock()
	return mock.GetCallFunc(ctx, callID)
}

func (mock *callSourceMock) GetCallCalls() []struct {
	Ctx    context.Context
	CallID string
} {
	mock.lockGetCall.RLock()
	calls := mock.calls.GetCall
	mock.lockGetCall.RUnlock()
	return calls
}
