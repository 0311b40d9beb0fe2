package routine

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

// Recover is meant to be deferred. If the surrounding function is panicking,
// each cleanup is called in order with the panic value and the panic is
// swallowed.
func Recover(cleanups ...func(r interface{})) {
	if r := recover(); r != nil {
		for _, cleanup := range cleanups {
			cleanup(r)
		}
	}
}

// Recovered captures a panic value together with the program counters of the
// panic site. skip counts stack frames to omit, with 0 identifying the
// caller of NewRecovered.
type Recovered struct {
	Value   interface{}
	Callers []uintptr
}

func NewRecovered(skip int, value interface{}) *Recovered {
	var callers [32]uintptr
	n := runtime.Callers(skip+1, callers[:])
	return &Recovered{
		Value:   value,
		Callers: callers[:n],
	}
}

// AsError returns the capture as an error, or nil for a nil receiver.
func (p *Recovered) AsError() error {
	if p == nil {
		return nil
	}
	return &RecoveredError{p}
}

// RecoveredError is a Recovered panic as an error. It exposes the captured
// stack in pkg/errors frame format, so %+v prints the panic site.
type RecoveredError struct {
	*Recovered
}

func (e *RecoveredError) Error() string {
	return fmt.Sprintf("panic: %v\nstacktrace:%+v", e.Value, e.StackTrace())
}

func (e *RecoveredError) StackTrace() errors.StackTrace {
	if e == nil {
		return nil
	}
	frames := make([]errors.Frame, len(e.Callers))
	for i, pc := range e.Callers {
		frames[i] = errors.Frame(pc)
	}
	return frames
}
