package ctxstore

import (
	"context"
	"sync"
	"sync/atomic"
)

// Namespace owns a family of scopes. Scopes of different namespaces never
// see each other, even when they ride on the same context.
//
// A nil *Namespace is valid and behaves as a namespace with no active scope.
type Namespace struct {
	name string
	seq  atomic.Uint64
}

// ctxKey is unique per namespace instance.
type ctxKey struct{ ns *Namespace }

var registry = struct {
	mu         sync.Mutex
	namespaces map[string]*Namespace
}{namespaces: make(map[string]*Namespace)}

// NewNamespace returns a namespace that is not registered process-wide.
// Useful for dependency injection and tests.
func NewNamespace(name string) *Namespace {
	if name == "" {
		panic("ctxstore: namespace name cannot be empty")
	}
	return &Namespace{name: name}
}

// CreateNamespace returns the process-wide namespace registered under name,
// creating it on first use. Repeated calls with the same name return the
// same instance.
func CreateNamespace(name string) *Namespace {
	if name == "" {
		panic("ctxstore: namespace name cannot be empty")
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if ns, ok := registry.namespaces[name]; ok {
		return ns
	}
	ns := &Namespace{name: name}
	registry.namespaces[name] = ns
	return ns
}

// GetNamespace looks up a registered namespace.
func GetNamespace(name string) (*Namespace, bool) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	ns, ok := registry.namespaces[name]
	return ns, ok
}

// DestroyNamespace removes name from the registry. Contexts that already
// carry scopes of the removed namespace keep working.
func DestroyNamespace(name string) {
	registry.mu.Lock()
	delete(registry.namespaces, name)
	registry.mu.Unlock()
}

// Name returns the namespace name.
func (ns *Namespace) Name() string {
	if ns == nil {
		return ""
	}
	return ns.name
}

// Enter creates a scope nested in the active one (if any) and returns a
// context carrying it.
func (ns *Namespace) Enter(ctx context.Context) (context.Context, *Scope) {
	if ctx == nil {
		ctx = context.Background()
	}
	if ns == nil {
		return ctx, nil
	}
	parent, _ := ns.Scope(ctx)
	s := newScope(ns.seq.Add(1), parent)
	return context.WithValue(ctx, ctxKey{ns}, s), s
}

// Run executes fn synchronously inside a new scope. Work started from the
// context handed to fn stays in that scope after Run returns.
func (ns *Namespace) Run(ctx context.Context, fn func(ctx context.Context)) {
	ctx, _ = ns.Enter(ctx)
	fn(ctx)
}

// RunWithError is Run for callbacks that fail.
func (ns *Namespace) RunWithError(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, _ = ns.Enter(ctx)
	return fn(ctx)
}

// RunAndReturn is Run for callbacks that produce a value.
func RunAndReturn[T any](ctx context.Context, ns *Namespace, fn func(ctx context.Context) T) T {
	ctx, _ = ns.Enter(ctx)
	return fn(ctx)
}

// Scope returns the active scope of ctx.
func (ns *Namespace) Scope(ctx context.Context) (*Scope, bool) {
	if ns == nil || ctx == nil {
		return nil, false
	}
	s, ok := ctx.Value(ctxKey{ns}).(*Scope)
	return s, ok && s != nil
}

// Active reports whether ctx carries a scope of this namespace.
func (ns *Namespace) Active(ctx context.Context) bool {
	_, ok := ns.Scope(ctx)
	return ok
}

// Set stores value under key in the active scope.
// Without an active scope the call does nothing.
func (ns *Namespace) Set(ctx context.Context, key string, value any) {
	if s, ok := ns.Scope(ctx); ok {
		s.set(key, value)
	}
}

// Get returns the value stored under key in the active scope or one of its
// parents. It returns false when no scope is active or the key is unset.
func (ns *Namespace) Get(ctx context.Context, key string) (any, bool) {
	s, ok := ns.Scope(ctx)
	if !ok {
		return nil, false
	}
	return s.get(key)
}

// Value is a typed Get. A value of another type is reported as absent.
func Value[T any](ctx context.Context, ns *Namespace, key string) (T, bool) {
	var zero T
	v, ok := ns.Get(ctx, key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}
