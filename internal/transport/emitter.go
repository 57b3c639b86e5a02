package transport

import (
	"context"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"kompakt/internal/workflow"
)

type wailsEmitter struct {
	ctx context.Context
}

// NewEmitter creates an emitter pushing events to the Wails frontend.
func NewEmitter(ctx context.Context) workflow.Emitter {
	return &wailsEmitter{ctx: ctx}
}

func (e *wailsEmitter) Emit(event string, data any) {
	wailsruntime.EventsEmit(e.ctx, event, data)
}
