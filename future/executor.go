package future

import "github.com/fernhold/async/future/executors"

// Executor abstracts how submitted work is run: on a fresh goroutine, on a
// bounded pool, or on the calling goroutine. Implementations make no promise
// about which goroutine runs the work or in which order independently
// submitted units run.
//
// The default is executors.GoExecutor, one goroutine per unit of work. Use
// SetExecutor to replace it, typically to bound concurrency:
//
//	future.SetExecutor(executors.NewPoolExecutor(100))
//
// or to adapt an existing pool through ExecutorFunc:
//
//	future.SetExecutor(future.ExecutorFunc(pool.Submit))
//
// Replacing the default affects every later Async/CtxAsync call; work that
// may block for long periods can stall a bounded executor's queue, so
// measure before swapping one in.
type Executor interface {
	Submit(func())
}

// ExecutorFunc adapts a plain function to the Executor interface.
type ExecutorFunc func(func())

func (e ExecutorFunc) Submit(f func()) {
	e(f)
}

var executor Executor = executors.GoExecutor{}

// SetExecutor replaces the executor used by Async and CtxAsync.
// It panics if e is nil.
func SetExecutor(e Executor) {
	if e == nil {
		panic("executor is nil")
	}
	executor = e
}
