package requestid

import (
	"context"

	"github.com/dmitrymomot/rtracer/pkg/ctxstore"
)

// ID returns the request id of the scope active in ctx. It reports false
// outside a request, which is a normal state rather than an error.
func (t *Tracer) ID(ctx context.Context) (string, bool) {
	if t == nil {
		return "", false
	}
	return ctxstore.Value[string](ctx, t.ns, Key)
}

// FromContext is ID without the flag; the empty string means absent.
func (t *Tracer) FromContext(ctx context.Context) string {
	id, _ := t.ID(ctx)
	return id
}

// WithID opens a scope carrying id on top of ctx. An empty id is replaced
// by a generated one.
func (t *Tracer) WithID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = t.generate()
	}
	ctx, _ = t.ns.Enter(ctx)
	t.ns.Set(ctx, Key, id)
	return ctx
}

// Run executes fn in a scope carrying id, for work that does not arrive
// over HTTP: queue consumers, cron jobs, CLI commands.
func (t *Tracer) Run(ctx context.Context, id string, fn func(ctx context.Context)) {
	fn(t.WithID(ctx, id))
}
