package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/callhistory-backend/internal/domain"
	"github.com/heartmarshall/callhistory-backend/internal/service/calltrash"
	"sync"
)

var _ trashService = &trashServiceMock{}

type trashServiceMock struct {
	ListFunc    func(ctx context.Context, in calltrash.ListInput) ([]domain.TrashRecord, int, error)
	GetFunc     func(ctx context.Context, trashID uuid.UUID) (*domain.TrashRecord, error)
	RestoreFunc func(ctx context.Context, trashID uuid.UUID) (*domain.CallRecord, error)
	SweepFunc   func(ctx context.Context) (int, error)

	calls struct {
		List []struct {
			Ctx context.Context
			In  calltrash.ListInput
		}
		Get []struct {
			Ctx     context.Context
			TrashID uuid.UUID
		}
		Restore []struct {
			Ctx     context.Context
			TrashID uuid.UUID
		}
		Sweep []struct {
			Ctx context.Context
		}
	}
	lockList    sync.RWMutex
	lockGet     sync.RWMutex
	lockRestore sync.RWMutex
	lockSweep   sync.RWMutex
}

func (mock *trashServiceMock) List(ctx context.Context, in calltrash.ListInput) ([]domain.TrashRecord, int, error) {
	if mock.ListFunc == nil {
		panic("trashServiceMock.ListFunc: method is nil but trashService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  calltrash.ListInput
	}{Ctx: ctx, In: in}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, in)
}

func (mock *trashServiceMock) ListCalls() []struct {
	Ctx context.Context
	In  calltrash.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *trashServiceMock) Get(ctx context.Context, trashID uuid.UUID) (*domain.TrashRecord, error) {
	if mock.GetFunc == nil {
		panic("trashServiceMock.GetFunc: method is nil but trashService.Get was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TrashID uuid.UUID
	}{Ctx: ctx, TrashID: trashID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, trashID)
}

func (mock *trashServiceMock) GetCalls() []struct {
	Ctx     context.Context
	TrashID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *trashServiceMock) Restore(ctx context.Context, trashID uuid.UUID) (*domain.CallRecord, error) {
	if mock.RestoreFunc == nil {
		panic("trashServiceMock.RestoreFunc: method is nil but trashService.Restore was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TrashID uuid.UUID
	}{Ctx: ctx, TrashID: trashID}
	mock.lockRestore.Lock()
	mock.calls.Restore = append(mock.calls.Restore, callInfo)
	mock.lockRestore.Unlock()
	return mock.RestoreFunc(ctx, trashID)
}

func (mock *trashServiceMock) RestoreCalls() []struct {
	Ctx     context.Context
	TrashID uuid.UUID
} {
	mock.lockRestore.RLock()
	calls := mock.calls.Restore
	mock.lockRestore.RUnlock()
	return calls
}

func (mock *trashServiceMock) Sweep(ctx context.Context) (int, error) {
	if mock.SweepFunc == nil {
		panic("trashServiceMock.SweepFunc: method is nil but trashService.Sweep was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockSweep.Lock()
	mock.calls.Sweep = append(mock.calls.Sweep, callInfo)
	mock.lockSweep.Unlock()
	return mock.SweepFunc(ctx)
}

func (mock *trashServiceMock) SweepCalls() []struct {
	Ctx context.Context
} {
	mock.lockSweep.RLock()
	calls := mock.calls.Sweep
	mock.lockSweep.RUnlock()
	return calls
}
