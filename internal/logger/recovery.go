package logger

import (
	"context"
	"runtime/debug"
	"time"
)

// Recover traps unexpected panics, reports them at fatal level with a stack
// trace and re-panics with FatalError so main exits with status 1.
// Usage: defer logger.Recover(ctx)
func Recover(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}
	if _, ok := r.(FatalError); !ok {
		func() {
			// Logging must not mask the original panic
			defer func() { _ = recover() }()
			logAt(ctx, time.Now(), LevelFatal, "panic: %v\n%s", r, debug.Stack())
		}()
	}
	panic(FatalError{})
}
