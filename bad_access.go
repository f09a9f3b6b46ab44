package maybe

import (
	"errors"
	"fmt"
	"runtime"
)

var ErrBadAccess = errors.New("maybe: bad access")

// BadAccess is the panic value of a refused access. It records the call
// site of the accessor.
type BadAccess struct {
	Op   string
	File string
	Line int
	Func string
}

func (e *BadAccess) Error() string {
	if e.File == "" {
		return fmt.Sprintf("maybe: bad access: %s", e.Op)
	}
	return fmt.Sprintf("maybe: bad access: %s at %s:%d (%s)", e.Op, e.File, e.Line, e.Func)
}

func (e *BadAccess) Is(target error) bool { return target == ErrBadAccess }

// badAccess builds a BadAccess for the caller skip frames above it.
func badAccess(op string, skip int) *BadAccess {
	e := &BadAccess{Op: op}
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return e
	}
	e.File, e.Line = file, line
	if fn := runtime.FuncForPC(pc); fn != nil {
		e.Func = fn.Name()
	}
	return e
}
