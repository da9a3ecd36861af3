// Package ctxstore provides scope-local storage that follows a unit of work
// across goroutines, timers and callbacks.
//
// A Namespace owns scopes. Namespace.Run opens a Scope, attaches it to a
// derived context.Context and calls the supplied function with that context.
// Any code reached through that context, however many goroutines or timer
// hops away, observes the same scope and can read the values stored in it.
// Concurrent units of work each get their own scope and never see each
// other's values.
//
// Go has no goroutine-local storage, so the context is the carrier: the
// "active scope" is the innermost scope of the namespace found in the
// context the caller holds. Since blocking calls in Go already take a
// context, propagation comes for free across anything that accepts one.
// For primitives that do not, the package offers scope-preserving helpers:
//
//   - Go starts a goroutine.
//   - AfterFunc schedules a timer callback.
//   - Bind captures a callback to be invoked later from anywhere.
//   - Async starts work returning a Future; WaitAll and WaitAny combine them.
//   - NewGroup runs an errgroup fan-out.
//
// Go, AfterFunc and Bind run on a Detach-ed context: values are kept, parent
// cancellation is not. A handler may therefore schedule work that outlives
// the request and still resolves to the request's scope.
//
// # Usage
//
//	ns := ctxstore.CreateNamespace("billing")
//
//	ns.Run(ctx, func(ctx context.Context) {
//	    ns.Set(ctx, "tenant", "acme")
//
//	    ctxstore.AfterFunc(ctx, time.Second, func(ctx context.Context) {
//	        tenant, _ := ctxstore.Value[string](ctx, ns, "tenant") // "acme"
//	        _ = tenant
//	    })
//	})
//
// # Nesting
//
// Run inside an active scope opens a child scope. The child reads through
// to its parent and shadows it on write; the parent never sees the child's
// values.
//
// # Error Handling
//
// The scope API never fails. Set without an active scope is a no-op, Get
// without one reports absence. Only futures return the ErrTimeout and
// ErrNoFutures sentinels.
package ctxstore
