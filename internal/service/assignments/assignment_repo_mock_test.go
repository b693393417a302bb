package assignments

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/callhistory-backend/internal/domain"
	"sync"
)

var _ assignmentRepo = &assignmentRepoMock{}

type assignmentRepoMock struct {
	SaveFunc    func(ctx context.Context, a *domain.AgentAssignment) (*domain.AgentAssignment, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.AgentAssignment, error)
	ListFunc    func(ctx context.Context) ([]domain.AgentAssignment, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Save []struct {
			Ctx context.Context
			A   *domain.AgentAssignment
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockSave    sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *assignmentRepoMock) Save(ctx context.Context, a *domain.AgentAssignment) (*domain.AgentAssignment, error) {
	if mock.SaveFunc == nil {
		panic("assignmentRepoMock.SaveFunc: method is nil but assignmentRepo.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.AgentAssignment
	}{Ctx: ctx, A: a}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, a)
}

func (mock *assignmentRepoMock) SaveCalls() []struct {
	Ctx context.Context
	A   *domain.AgentAssignment
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.AgentAssignment, error) {
	if mock.GetByIDFunc == nil {
		panic("assignmentRepoMock.GetByIDFunc: method is nil but assignmentRepo.GetByID was just called")
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

func (mock *assignmentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) List(ctx context.Context) ([]domain.AgentAssignment, error) {
	if mock.ListFunc == nil {
		panic("assignmentRepoMock.ListFunc: method is nil but assignmentRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *assignmentRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("assignmentRepoMock.DeleteFunc: method is nil but assignmentRepo.Delete was just called")
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

func (mock *assignmentRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
