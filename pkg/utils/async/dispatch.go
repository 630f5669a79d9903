package async

import (
	"context"
	"runtime/debug"

	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/utils/logging"
)

// Dispatch runs handler in a new goroutine with a detached context.
//
// The logger stored in ctx is carried over, but cancelling ctx does not cancel
// the handler. Panics are recovered and logged with their stack; returned
// errors are logged.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.From(newCtx).Error("panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()))
			}
		}()

		if err := handler(newCtx); err != nil {
			logging.From(newCtx).Error("error in async handler", "error", err)
		}
	}()
}

func newBackgroundContext(ctx context.Context) context.Context {
	return logging.With(context.Background(), logging.From(ctx))
}
