// Package future implements the promise/future pattern for Go.
//
// A [Promise] is the write end of the pair: it is completed at most once,
// with either a value or an error. The associated [Future] is the read end:
// consumers compose on it with [Then], [Map] and [FlatMap], register
// callbacks with [Future.Subscribe], or perform a bounded blocking wait with
// [Await]. Completion is first-writer-wins and safe under any number of
// concurrent producers.
//
// Work is started through [Async], [CtxAsync] or [Submit], which run the
// given function on an [Executor] and return the Future for its outcome.
// Panics inside submitted work are recovered and surface as a failure
// wrapping [ErrPanic]; they never take down the worker goroutine's process.
//
// Composition via [FlatMap] is sequential: each stage starts only after the
// previous stage's Future resolves. To run independent pieces of work in
// parallel, submit them all first and combine the resulting Futures (for
// example with [AllOf] or [FirstCompletedOf]) instead of submitting inside
// the chain.
package future
