package rest

import (
	"context"
	"github.com/heartmarshall/callhistory-backend/internal/service/callsync"
	"sync"
)

var _ syncRunner = &syncRunnerMock{}

type syncRunnerMock struct {
	SyncFunc             func(ctx context.Context) (callsync.SyncResult, error)
	TranslateReasonsFunc func(ctx context.Context) (int, error)

	calls struct {
		Sync []struct {
			Ctx context.Context
		}
		TranslateReasons []struct {
			Ctx context.Context
		}
	}
	lockSync             sync.RWMutex
	lockTranslateReasons sync.RWMutex
}

func (mock *syncRunnerMock) Sync(ctx context.Context) (callsync.SyncResult, error) {
	if mock.SyncFunc == nil {
		panic("syncRunnerMock.SyncFunc: method is nil but syncRunner.Sync was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockSync.Lock()
	mock.calls.Sync = append(mock.calls.Sync, callInfo)
	mock.lockSync.Unlock()
	return mock.SyncFunc(ctx)
}

func (mock *syncRunnerMock) SyncCalls() []struct {
	Ctx context.Context
} {
	mock.lockSync.RLock()
	calls := mock.calls.Sync
	mock.lockSync.RUnlock()
	return calls
}

func (mock *syncRunnerMock) TranslateReasons(ctx context.Context) (int, error) {
	if mock.TranslateReasonsFunc == nil {
		panic("syncRunnerMock.TranslateReasonsFunc: method is nil but syncRunner.TranslateReasons was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockTranslateReasons.Lock()
	mock.calls.TranslateReasons = append(mock.calls.TranslateReasons, callInfo)
	mock.lockTranslateReasons.Unlock()
	return mock.TranslateReasonsFunc(ctx)
}

func (mock *syncRunnerMock) TranslateReasonsCalls() []struct {
	Ctx context.Context
} {
	mock.lockTranslateReasons.RLock()
	calls := mock.calls.TranslateReasons
	mock.lockTranslateReasons.RUnlock()
	return calls
}
