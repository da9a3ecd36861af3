package ctxstore

import (
	"context"
	"time"
)

// Future represents the result of work running in the scopes of the
// context it was started with.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await waits for the work to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits at most timeout for completion.
// On timeout it returns ErrTimeout; the work itself keeps running.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case <-f.done:
		return f.result, f.err
	case <-t.C:
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports completion without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async runs fn in a new goroutine and returns a Future for its result.
// fn receives ctx unchanged, so it sees the caller's scopes and is canceled
// together with the caller. If ctx is already canceled fn is not called.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	if ctx == nil {
		ctx = context.Background()
	}
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// WaitAll waits for every future and returns their results in order.
// The first error encountered, in argument order, is returned.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))
	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// WaitAny returns the index, result and error of the first future to finish.
func WaitAny[U any](futures ...*Future[U]) (int, U, error) {
	if len(futures) == 0 {
		var zero U
		return -1, zero, ErrNoFutures
	}

	type outcome struct {
		index  int
		result U
		err    error
	}
	// Buffered so losers never block.
	done := make(chan outcome, len(futures))

	for i, future := range futures {
		go func() {
			result, err := future.Await()
			done <- outcome{i, result, err}
		}()
	}

	res := <-done
	return res.index, res.result, res.err
}
