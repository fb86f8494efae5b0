package voronoi

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every input error returned from Run.
var ErrInvalidInput = errors.New("voronoi: invalid input")

// InvariantError reports a broken internal invariant of the sweep. It is
// never expected; seeing one means the beach line or the event queue was
// corrupted.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("voronoi: invariant violated in %s: %s", e.Op, e.Detail)
}

func violate(op, format string, args ...any) {
	panic(&InvariantError{Op: op, Detail: fmt.Sprintf(format, args...)})
}
