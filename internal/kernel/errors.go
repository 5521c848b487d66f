package kernel

import (
	"fmt"
	"strings"
)

// Error is the fatal, structured precondition violation raised by every
// engine operation. It is never recovered from: a failing check is a
// bug in the caller's proof script, not a condition to handle.
type Error struct {
	Op string // the operation that failed, e.g. "direct_proof", "specialise"
	Detail string
	Context []int // ids of the frames open at the time of failure
}

func (e *Error) Error() string {
	var ctx string
	if len(e.Context) > 0 {
		parts := make([]string, len(e.Context))
		for i, c := range e.Context {
			parts[i] = fmt.Sprintf("%d", c)
		}
		ctx = " (open frames: " + strings.Join(parts, ",") + ")"
	}
	return fmt.Sprintf("kernel: %s: %s%s", e.Op, e.Detail, ctx)
}

func (e *Engine) errf(op, format string, args...interface{}) *Error {
	ids := make([]int, len(e.frames))
	for i, fr := range e.frames {
		ids[i] = fr.id
	}
	return &Error{Op: op, Detail: fmt.Sprintf(format, args...), Context: ids}
}
