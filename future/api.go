package future

import (
	"context"
	"errors"
	"fmt"

	"github.com/fernhold/async/routine"
)

var (
	// ErrPanic wraps a panic recovered from submitted work or from a
	// combinator's transform function.
	ErrPanic = errors.New("async panic")
	// ErrTimeout reports that Await, Timeout or Until ran out of time before
	// the source future completed.
	ErrTimeout = errors.New("future timeout")
	// ErrAlreadySet is the panic value of Promise.Set on a completed promise.
	ErrAlreadySet = errors.New("promise already completed")
)

// panicErr converts a recovered panic value into the failure reason of a
// future, keeping the panic site's stack reachable via pkg/errors frames.
func panicErr(r any) error {
	return fmt.Errorf("%w: %w", ErrPanic, routine.NewRecovered(2, r).AsError())
}

// Async runs f on the default executor and returns the Future for its
// outcome. If f panics, the future fails with an error wrapping ErrPanic.
func Async[T any](f func() (T, error)) *Future[T] {
	return Submit(executor, f)
}

// CtxAsync is Async for work that takes a context. The context is passed
// through to f; it does not cancel the returned future.
func CtxAsync[T any](ctx context.Context, f func(ctx context.Context) (T, error)) *Future[T] {
	return CtxSubmit(ctx, executor, f)
}

// Submit runs f on e and returns the Future for its outcome. Submit returns
// as soon as e accepts the work; with the default GoExecutor that is
// immediately, on a goroutine that is not the caller's.
func Submit[T any](e Executor, f func() (T, error)) *Future[T] {
	s := newState[T]()
	e.Submit(func() {
		defer func() {
			if r := recover(); r != nil {
				var zero T
				s.set(zero, panicErr(r))
			}
		}()
		val, err := f()
		s.set(val, err)
	})
	return &Future[T]{state: s}
}

// CtxSubmit is Submit for work that takes a context.
func CtxSubmit[T any](ctx context.Context, e Executor, f func(ctx context.Context) (T, error)) *Future[T] {
	s := newState[T]()
	e.Submit(func() {
		defer func() {
			if r := recover(); r != nil {
				var zero T
				s.set(zero, panicErr(r))
			}
		}()
		val, err := f(ctx)
		s.set(val, err)
	})
	return &Future[T]{state: s}
}

// Resolved returns a future that is already completed with val. No
// asynchronous hand-off happens; the future is built on the calling
// goroutine.
func Resolved[T any](val T) *Future[T] {
	return Completed(val, nil)
}

// Rejected returns a future that is already failed with err.
func Rejected[T any](err error) *Future[T] {
	var zero T
	return Completed(zero, err)
}

// Completed returns a future that is already completed with val and err.
func Completed[T any](val T, err error) *Future[T] {
	s := newState[T]()
	s.set(val, err)
	return &Future[T]{state: s}
}
