package rest

import (
	"context"
	"github.com/heartmarshall/callhistory-backend/internal/preview"
	"sync"
)

var _ previewRenderer = &previewRendererMock{}

type previewRendererMock struct {
	RenderFunc func(ctx context.Context, u preview.Upload) string

	calls struct {
		Render []struct {
			Ctx context.Context
			U   preview.Upload
		}
	}
	lockRender sync.RWMutex
}

func (mock *previewRendererMock) Render(ctx context.Context, u preview.Upload) string {
	if mock.RenderFunc == nil {
		panic("previewRendererMock.RenderFunc: method is nil but previewRenderer.Render was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   preview.Upload
	}{Ctx: ctx, U: u}
	mock.lockRender.Lock()
	mock.calls.Render = append(mock.calls.Render, callInfo)
	mock.lockRender.Unlock()
	return mock.RenderFunc(ctx, u)
}

func (mock *previewRendererMock) RenderCalls() []struct {
	Ctx context.Context
	U   preview.Upload
} {
	mock.lockRender.RLock()
	calls := mock.calls.Render
	mock.lockRender.RUnlock()
	return calls
}
