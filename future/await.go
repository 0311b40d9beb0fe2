package future

import "time"

// Await blocks until f completes or timeout elapses. On completion it
// returns f's result; on timeout it returns ErrTimeout without affecting f,
// so a later Await or Get on the same future behaves normally.
//
// Await is the one bounded blocking operation in this package. Keep it at
// the top level of an orchestration or in tests; intermediate stages should
// compose with Then, Map and FlatMap instead.
func Await[T any](f *Future[T], timeout time.Duration) (T, error) {
	if f.IsDone() {
		return f.state.get()
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-f.Done():
		return f.state.get()
	case <-t.C:
		var zero T
		return zero, ErrTimeout
	}
}

// Timeout returns a future that settles with f's result if f completes
// within d, and fails with ErrTimeout otherwise. f itself keeps running
// either way; Timeout bounds observation, not execution.
func Timeout[T any](f *Future[T], d time.Duration) *Future[T] {
	s := newState[T]()
	t := time.AfterFunc(d, func() {
		var zero T
		s.set(zero, ErrTimeout)
	})
	f.state.subscribe(func(val T, err error) {
		t.Stop()
		s.set(val, err)
	})
	return &Future[T]{state: s}
}

// Until is Timeout with an absolute deadline.
func Until[T any](f *Future[T], deadline time.Time) *Future[T] {
	return Timeout(f, time.Until(deadline))
}
