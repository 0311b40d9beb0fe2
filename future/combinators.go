package future

import "sync/atomic"

// Then chains a continuation onto f. cb always runs, observing either branch
// of f's result, and its return completes the derived future. A panic inside
// cb fails the derived future with an error wrapping ErrPanic.
//
// cb runs on whichever goroutine completes f (or on the calling goroutine if
// f is already completed) and must not block.
func Then[T any, R any](f *Future[T], cb func(T, error) (R, error)) *Future[R] {
	s := newState[R]()
	f.state.subscribe(func(val T, err error) {
		defer func() {
			if r := recover(); r != nil {
				var zero R
				s.set(zero, panicErr(r))
			}
		}()
		rval, rerr := cb(val, err)
		s.set(rval, rerr)
	})
	return &Future[R]{state: s}
}

// Map transforms f's success value. If f fails, the derived future fails
// with the same reason and fn is never invoked. If fn returns an error or
// panics, that becomes the derived future's failure.
func Map[T any, R any](f *Future[T], fn func(T) (R, error)) *Future[R] {
	return Then(f, func(val T, err error) (R, error) {
		if err != nil {
			var zero R
			return zero, err
		}
		return fn(val)
	})
}

// FlatMap binds fn onto f's success value; the derived future completes when
// the future returned by fn does. If f fails, fn is never invoked and the
// derived future fails with f's reason.
//
// FlatMap is sequential: fn runs, and the inner work with it, only after f
// resolves. Chaining independent pieces of work through FlatMap therefore
// serializes them; submit them all first and combine with AllOf when they
// should run in parallel.
func FlatMap[T any, R any](f *Future[T], fn func(T) *Future[R]) *Future[R] {
	s := newState[R]()
	f.state.subscribe(func(val T, err error) {
		if err != nil {
			var zero R
			s.set(zero, err)
			return
		}
		defer func() {
			if r := recover(); r != nil {
				var zero R
				s.set(zero, panicErr(r))
			}
		}()
		fn(val).state.subscribe(func(rval R, rerr error) {
			s.set(rval, rerr)
		})
	})
	return &Future[R]{state: s}
}

// FirstCompletedOf returns a future that settles with the first of fs to
// complete, success or failure alike; the rest are ignored. Which source
// wins a wall-clock tie is whichever completion the winning TrySet observes
// first, nothing more. With no sources the result stays pending forever.
func FirstCompletedOf[T any](fs ...*Future[T]) *Future[T] {
	p := NewPromise[T]()
	for _, f := range fs {
		f.state.subscribe(func(val T, err error) {
			p.TrySet(val, err)
		})
	}
	return p.Future()
}

// AllOf collects the results of fs in order. The returned future succeeds
// once every source has, or fails with the first failure observed. With no
// sources it succeeds immediately with a nil slice.
func AllOf[T any](fs ...*Future[T]) *Future[[]T] {
	if len(fs) == 0 {
		return Resolved[[]T](nil)
	}

	s := newState[[]T]()
	results := make([]T, len(fs))
	remaining := int32(len(fs))
	for i, f := range fs {
		i := i
		f.state.subscribe(func(val T, err error) {
			if err != nil {
				s.set(nil, err)
				return
			}
			results[i] = val
			if atomic.AddInt32(&remaining, -1) == 0 {
				s.set(results, nil)
			}
		})
	}
	return &Future[[]T]{state: s}
}
