package future

// Promise is the write end of a promise/future pair. It stores a value or an
// error that is later observed through the Future created alongside it. A
// Promise is meant to be completed only once: the operation that completes it
// synchronizes-with (as defined in Go's memory model) every observation of
// the result, whether through Future.Get, a subscription callback or the
// Done channel.
//
// Completing an already-completed Promise is either a programming error
// (Set, which panics) or an expected race between producers (TrySet, which
// reports whether the call won).
//
// A Promise must not be copied after first use.
type Promise[T any] struct {
	state *state[T]
}

// NewPromise creates an unresolved Promise.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{
		state: newState[T](),
	}
}

// Set completes the promise with val and err.
// It panics with ErrAlreadySet if the promise is already completed.
func (p *Promise[T]) Set(val T, err error) {
	if !p.state.set(val, err) {
		panic(ErrAlreadySet)
	}
}

// TrySet attempts to complete the promise with val and err. The first call
// wins; every later call is a no-op returning false. TrySet is safe to call
// from any number of concurrent producers.
func (p *Promise[T]) TrySet(val T, err error) bool {
	return p.state.set(val, err)
}

// Resolve completes the promise successfully with val.
// It reports whether this call took effect.
func (p *Promise[T]) Resolve(val T) bool {
	return p.state.set(val, nil)
}

// Reject completes the promise with err.
// It reports whether this call took effect.
func (p *Promise[T]) Reject(err error) bool {
	var zero T
	return p.state.set(zero, err)
}

// Future returns the read end associated with the promise.
func (p *Promise[T]) Future() *Future[T] {
	return &Future[T]{state: p.state}
}

// IsFree returns true if the promise has not been completed yet.
func (p *Promise[T]) IsFree() bool {
	return p.state.isPending()
}

// Future is the read end of a promise/future pair: a handle to a value that
// becomes available at most once, either as a result or as an error. A
// Future is immutable apart from its single pending -> completed transition.
//
// Consumers have three ways to observe the result:
//
// 1. Compose without blocking, using Then, Map and FlatMap.
//
// 2. Register a callback with Subscribe, or select on the Done channel.
//
// 3. Block, with Get (unbounded) or Await (with a timeout). Blocking is
// meant for top-level orchestration and tests; intermediate stages should
// compose instead.
type Future[T any] struct {
	state *state[T]
}

// Get blocks until the future is completed and returns its result. Calling
// Get on a completed future returns immediately, with the same result every
// time.
func (f *Future[T]) Get() (T, error) {
	return f.state.get()
}

// Subscribe registers a callback to run once when the future completes.
// Exactly one of val and err is meaningful, depending on the terminal state.
// If the future is already completed, cb runs immediately on the calling
// goroutine.
//
// NOTE: cb runs on whichever goroutine completes the promise. It must not
// block.
func (f *Future[T]) Subscribe(cb func(val T, err error)) {
	f.state.subscribe(cb)
}

// Done returns a channel that is closed when the future completes. It is
// intended for use in select statements; after it is closed, Get returns
// without blocking.
func (f *Future[T]) Done() <-chan struct{} {
	return f.state.doneCh()
}

// IsDone returns true if the future is completed.
func (f *Future[T]) IsDone() bool {
	return f.state.isDone()
}
