package routine

// RunSafe calls fn, recovering any panic. If fn panics, each cleanup is
// called in order with the panic value; the panic does not propagate.
func RunSafe(fn func(), cleanups ...func(r interface{})) {
	defer Recover(cleanups...)

	fn()
}

// GoSafe runs fn on a new goroutine with the same panic containment as
// RunSafe. A panic in fn neither crashes the program nor propagates.
func GoSafe(fn func(), cleanups ...func(r interface{})) {
	go RunSafe(fn, cleanups...)
}
