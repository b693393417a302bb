package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/callhistory-backend/internal/domain"
	"github.com/heartmarshall/callhistory-backend/internal/service/assignments"
	"sync"
)

var _ assignmentService = &assignmentServiceMock{}

type assignmentServiceMock struct {
	ListFunc   func(ctx context.Context) ([]domain.AgentAssignment, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.AgentAssignment, error)
	SaveFunc   func(ctx context.Context, in assignments.SaveInput) (*domain.AgentAssignment, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Save []struct {
			Ctx context.Context
			In  assignments.SaveInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList   sync.RWMutex
	lockGet    sync.RWMutex
	lockSave   sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *assignmentServiceMock) List(ctx context.Context) ([]domain.AgentAssignment, error) {
	if mock.ListFunc == nil {
		panic("assignmentServiceMock.ListFunc: method is nil but assignmentService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *assignmentServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *assignmentServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.AgentAssignment, error) {
	if mock.GetFunc == nil {
		panic("assignmentServiceMock.GetFunc: method is nil but assignmentService.Get was just called")
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

func (mock *assignmentServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *assignmentServiceMock) Save(ctx context.Context, in assignments.SaveInput) (*domain.AgentAssignment, error) {
	if mock.SaveFunc == nil {
		panic("assignmentServiceMock.SaveFunc: method is nil but assignmentService.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  assignments.SaveInput
	}{Ctx: ctx, In: in}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, in)
}

func (mock *assignmentServiceMock) SaveCalls() []struct {
	Ctx context.Context
	In  assignments.SaveInput
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *assignmentServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("assignmentServiceMock.DeleteFunc: method is nil but assignmentService.Delete was just called")
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

func (mock *assignmentServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
