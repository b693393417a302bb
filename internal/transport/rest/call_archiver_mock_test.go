package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/callhistory-backend/internal/domain"
	"sync"
)

var _ callArchiver = &callArchiverMock{}

type callArchiverMock struct {
	DeleteFunc func(ctx context.Context, callID uuid.UUID) (*domain.TrashRecord, error)

	calls struct {
		Delete []struct {
			Ctx    context.Context
			CallID uuid.UUID
		}
	}
	lockDelete sync.RWMutex
}

func (mock *callArchiverMock) Delete(ctx context.Context, callID uuid.UUID) (*domain.TrashRecord, error) {
	if mock.DeleteFunc == nil {
		panic("callArchiverMock.DeleteFunc: method is nil but callArchiver.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CallID uuid.UUID
	}{Ctx: ctx, CallID: callID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, callID)
}

func (mock *callArchiverMock) DeleteCalls() []struct {
	Ctx    context.Context
	CallID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
