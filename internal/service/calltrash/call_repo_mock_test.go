package calltrash

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/callhistory-backend/internal/domain"
	"sync"
)

var _ callRepo = &callRepoMock{}

type callRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.CallRecord, error)
	CreateFunc  func(ctx context.Context, call *domain.CallRecord) (*domain.CallRecord, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx  context.Context
			Call *domain.CallRecord
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
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

func (mock *callRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("callRepoMock.DeleteFunc: method is nil but callRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *callRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
