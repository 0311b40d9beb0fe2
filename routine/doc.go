// Package routine provides safe goroutine execution and panic recovery.
//
// RunSafe and GoSafe execute a function, synchronously or on a new
// goroutine, recovering any panic so it cannot crash the process. Recovered
// converts a panic value into an error that retains the panic site's call
// stack in pkg/errors frame format, so standard %+v formatting prints it.
//
// The future package builds its panic containment on this package: work
// submitted to an executor that panics surfaces as a failed future carrying
// a RecoveredError.
package routine
