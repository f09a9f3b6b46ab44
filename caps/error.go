package caps

import (
	"fmt"
	"reflect"
	"strings"
)

// Error reports a wrapped type lacking required capabilities.
type Error struct {
	Type    reflect.Type
	Missing []Cap
}

func (e *Error) Error() string {
	names := make([]string, len(e.Missing))
	for i, c := range e.Missing {
		names[i] = c.String()
	}
	return fmt.Sprintf("maybe: type %s is not %s", e.Type, strings.Join(names, ", "))
}

// Check returns an *Error if T misses any of cs.
func Check[T any](cs ...Cap) error {
	t := typeOf[T]()
	if missing := OfType(t).Missing(cs...); len(missing) > 0 {
		return &Error{Type: t, Missing: missing}
	}
	return nil
}

// Require panics with an *Error if T misses any of cs.
func Require[T any](cs ...Cap) {
	if err := Check[T](cs...); err != nil {
		panic(err)
	}
}
