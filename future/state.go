package future

import (
	"sync"
	"sync/atomic"
)

const (
	statePending uint32 = iota
	stateWriting
	stateDone
)

// state is the shared cell behind each Promise/Future pair. It transitions
// from pending to done exactly once; the value, the error and the close of
// the done channel are all published by that single transition.
type state[T any] struct {
	noCopy noCopy

	phase atomic.Uint32
	done  chan struct{}
	once  sync.Once

	val T
	err error

	mu  sync.Mutex
	cbs []func(T, error)
}

func newState[T any]() *state[T] {
	return &state[T]{}
}

func (s *state[T]) lazyInit() {
	s.once.Do(func() {
		s.done = make(chan struct{})
	})
}

// set attempts the pending -> done transition. It returns false if another
// writer already won. The winning call stores the result, closes the done
// channel and runs every registered callback, in registration order, on the
// calling goroutine.
func (s *state[T]) set(val T, err error) bool {
	if !s.phase.CompareAndSwap(statePending, stateWriting) {
		return false
	}
	s.val = val
	s.err = err
	s.phase.Store(stateDone)
	s.lazyInit()
	close(s.done)

	s.mu.Lock()
	cbs := s.cbs
	s.cbs = nil
	s.mu.Unlock()
	for _, cb := range cbs {
		cb(val, err)
	}
	return true
}

func (s *state[T]) get() (T, error) {
	if s.isDone() {
		return s.val, s.err
	}
	s.lazyInit()
	<-s.done
	return s.val, s.err
}

// subscribe registers cb to run once when the cell becomes done. If the cell
// is already done, cb runs immediately on the calling goroutine.
func (s *state[T]) subscribe(cb func(T, error)) {
	s.mu.Lock()
	if !s.isDone() {
		s.cbs = append(s.cbs, cb)
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	cb(s.val, s.err)
}

func (s *state[T]) isPending() bool {
	return s.phase.Load() == statePending
}

func (s *state[T]) isDone() bool {
	return s.phase.Load() == stateDone
}

// doneCh exposes the close-once channel for select-based waits.
func (s *state[T]) doneCh() <-chan struct{} {
	s.lazyInit()
	return s.done
}

// noCopy may be embedded into structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527 for details.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
