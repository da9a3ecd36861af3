package ctxstore

import (
	"context"
	"time"
)

// Detach returns a copy of ctx that keeps its values, and therefore its
// scopes, but is never canceled. Work that may outlive the request which
// scheduled it must run on a detached context.
func Detach(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return context.WithoutCancel(ctx)
}

// Go runs fn in a new goroutine within the scopes of ctx.
func Go(ctx context.Context, fn func(ctx context.Context)) {
	ctx = Detach(ctx)
	go fn(ctx)
}

// AfterFunc calls fn in its own goroutine after d, within the scopes of ctx.
// The returned timer can be stopped as usual.
func AfterFunc(ctx context.Context, d time.Duration, fn func(ctx context.Context)) *time.Timer {
	ctx = Detach(ctx)
	return time.AfterFunc(d, func() { fn(ctx) })
}

// Bind captures the scopes of ctx now and returns a callback that runs fn
// within them whenever, and from wherever, it is invoked.
func Bind(ctx context.Context, fn func(ctx context.Context)) func() {
	ctx = Detach(ctx)
	return func() { fn(ctx) }
}
