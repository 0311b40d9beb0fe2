// Package executors provides the stock Executor implementations used by the
// future package.
package executors

// GoExecutor runs each unit of work on its own goroutine. It is the default
// executor: no pooling, no concurrency limit.
type GoExecutor struct{}

func (GoExecutor) Submit(f func()) {
	go f()
}

// SyncExecutor runs work on the calling goroutine, returning from Submit
// only after f has finished. Futures built on it are already completed when
// the constructor returns; useful when a value is effectively known and no
// asynchronous hand-off is wanted, and in tests that need determinism.
type SyncExecutor struct{}

func (SyncExecutor) Submit(f func()) {
	f()
}

// PoolExecutor bounds concurrency with a semaphore: at most maxWorkers units
// of work run at once. Submit blocks while the pool is full.
type PoolExecutor struct {
	sem chan struct{}
}

func NewPoolExecutor(maxWorkers int) *PoolExecutor {
	return &PoolExecutor{
		sem: make(chan struct{}, maxWorkers),
	}
}

func (p *PoolExecutor) Submit(f func()) {
	p.sem <- struct{}{}
	go func() {
		defer func() { <-p.sem }()
		f()
	}()
}
