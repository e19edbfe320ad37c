package async

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
)

var inflight sync.WaitGroup

// Dispatch runs handler in a detached goroutine named by task. The handler
// gets a fresh background context so that it outlives the caller's request;
// only the logger and the request ID are carried over. Errors and panics are
// logged and never propagate.
func Dispatch(ctx context.Context, task string, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx, task)

	inflight.Add(1)
	go func() {
		defer inflight.Done()
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(newCtx).Error("Panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := handler(newCtx); err != nil {
			ctxlog.From(newCtx).Error("Error in async handler",
				"error", err,
			)
		}
	}()
}

// Wait blocks until all dispatched handlers return or ctx is done. It is used
// on shutdown so that in-flight forwarding is not cut off.
func Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func newBackgroundContext(ctx context.Context, task string) context.Context {
	newCtx := context.Background()

	if reqID := middleware.GetReqID(ctx); reqID != "" {
		newCtx = context.WithValue(newCtx, middleware.RequestIDKey, reqID)
	}

	logger := ctxlog.From(ctx).With("task", task)
	return ctxlog.With(newCtx, logger)
}
