package exception

import (
	"fmt"
	"go/token"
	"io"

	"golang.org/x/tools/go/packages"
)

// Error aborts the generator. It is raised by Throw and Die, and turned
// into an exit status by Catch.
type Error struct {
	prefix string
	msg    string
}

func (e *Error) Error() string { return e.prefix + ": " + e.msg }

func Throw(format string, args ...any) {
	panic(&Error{"error", fmt.Sprintf(format, args...)})
}

type hasPos interface {
	Pos() token.Pos
}

func ThrowAt(pkg *packages.Package, obj hasPos, format string, args ...any) {
	Throw("%s: %s", pkg.Fset.Position(obj.Pos()), fmt.Sprintf(format, args...))
}

func Die(err error) {
	if err != nil {
		panic(&Error{"oops", err.Error()})
	}
}

// Catch must be deferred. It prints an aborting Error to w and sets
// *code to 1; other panics go on unwinding.
func Catch(w io.Writer, code *int) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(*Error)
	if !ok {
		panic(r)
	}
	fmt.Fprintln(w, e)
	*code = 1
}
