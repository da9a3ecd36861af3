package ctxstore

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Group runs a fan-out of goroutines inside the scopes of the context it
// was created with. The first failure cancels the group context.
type Group struct {
	eg  *errgroup.Group
	ctx context.Context
}

// NewGroup returns a Group bound to ctx and the derived group context.
func NewGroup(ctx context.Context) (*Group, context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	eg, gctx := errgroup.WithContext(ctx)
	return &Group{eg: eg, ctx: gctx}, gctx
}

// Go starts fn in a new goroutine with the group context.
func (g *Group) Go(fn func(ctx context.Context) error) {
	g.eg.Go(func() error { return fn(g.ctx) })
}

// SetLimit caps the number of goroutines running at once; n < 0 removes the cap.
func (g *Group) SetLimit(n int) {
	g.eg.SetLimit(n)
}

// Wait blocks until every goroutine returned and reports the first error.
func (g *Group) Wait() error {
	return g.eg.Wait()
}
