package maybe

import (
	"fmt"

	"github.com/hsfzxjy/maybe/caps"
)

// Result holds exactly one of a success value T or an error value E.
//
// The zero Result is a success holding the zero T. The slot of the
// inactive alternative is kept at its zero value.
type Result[T, E any, A Access] struct {
	value  T
	err    E
	failed bool
}

type Res[T, E any] = Result[T, E, Checked]

func Ok[T, E any](v T) Res[T, E]   { return NewResult[T, E, Checked](v) }
func Fail[T, E any](e E) Res[T, E] { return NewError[T, E, Checked](Err[E]{Value: e}) }

func NewResult[T, E any, A Access](v T) Result[T, E, A] {
	saneResult[T, E]()
	return Result[T, E, A]{value: v}
}

func NewError[T, E any, A Access](e Err[E]) Result[T, E, A] {
	saneResult[T, E]()
	return Result[T, E, A]{err: e.Value, failed: true}
}

// ResultWith builds the success value in place with ctor. A failing ctor
// yields the zero Result and its error.
func ResultWith[T, E any, A Access](ctor func() (T, error)) (Result[T, E, A], error) {
	saneResult[T, E]()
	v, err := ctor()
	if err != nil {
		return Result[T, E, A]{}, err
	}
	return Result[T, E, A]{value: v}, nil
}

func saneResult[T, E any]() {
	sane[T]()
	sane[E]()
}

func (r Result[T, E, A]) HasValue() bool { return !r.failed }
func (r Result[T, E, A]) IsError() bool  { return r.failed }

// Reset drops the active alternative and makes r the zero success.
func (r *Result[T, E, A]) Reset() {
	if r.failed {
		caps.Drop(&r.err)
	} else {
		caps.Drop(&r.value)
	}
	*r = Result[T, E, A]{}
}

func (r *Result[T, E, A]) Drop() { r.Reset() }

func (r Result[T, E, A]) Unwrap() T {
	var a A
	if a.rejectUnwrap(!r.failed) {
		panic(badAccess("Unwrap", 1))
	}
	return r.value
}

func (r *Result[T, E, A]) UnwrapMut() *T {
	var a A
	if a.rejectUnwrap(!r.failed) {
		panic(badAccess("UnwrapMut", 1))
	}
	return &r.value
}

func (r Result[T, E, A]) UnwrapUnchecked() T { return r.value }

func (r Result[T, E, A]) UnwrapErr() E {
	var a A
	if a.rejectUnwrap(r.failed) {
		panic(badAccess("UnwrapErr", 1))
	}
	return r.err
}

func (r *Result[T, E, A]) UnwrapErrMut() *E {
	var a A
	if a.rejectUnwrap(r.failed) {
		panic(badAccess("UnwrapErrMut", 1))
	}
	return &r.err
}

func (r Result[T, E, A]) UnwrapErrUnchecked() E { return r.err }

// Deref returns a pointer to the success value, subject to the deref
// policy of A.
func (r *Result[T, E, A]) Deref() *T {
	var a A
	if a.rejectDeref(!r.failed) {
		panic(badAccess("Deref", 1))
	}
	return &r.value
}

// Val returns a copy of the success value, made through the payload's
// clone hook. It is empty if r is an error.
func (r *Result[T, E, A]) Val() (m Maybe[T, Flag[T], A], err error) {
	if r.failed {
		return
	}
	if m.value, err = caps.Clone(&r.value); err != nil {
		return Maybe[T, Flag[T], A]{}, err
	}
	m.tag.set = true
	return
}

// Err returns a copy of the error value. It is empty if r is a success.
func (r *Result[T, E, A]) Err() (m Maybe[E, Flag[E], A], err error) {
	if !r.failed {
		return
	}
	if m.value, err = caps.Clone(&r.err); err != nil {
		return Maybe[E, Flag[E], A]{}, err
	}
	m.tag.set = true
	return
}

// TakeVal moves the success value out. r keeps its discriminant and is
// left with a moved-from payload.
func (r *Result[T, E, A]) TakeVal() (m Maybe[T, Flag[T], A]) {
	if !r.failed {
		m.value = caps.Move(&r.value)
		m.tag.set = true
	}
	return
}

// TakeErr moves the error value out, like TakeVal.
func (r *Result[T, E, A]) TakeErr() (m Maybe[E, Flag[E], A]) {
	if r.failed {
		m.value = caps.Move(&r.err)
		m.tag.set = true
	}
	return
}

// Get returns both slots and whether r is a success.
func (r Result[T, E, A]) Get() (T, E, bool) { return r.value, r.err, !r.failed }

// Move transfers the active alternative out. r keeps its discriminant and
// is left with a moved-from payload.
func (r *Result[T, E, A]) Move() (out Result[T, E, A]) {
	out.failed = r.failed
	if r.failed {
		out.err = caps.Move(&r.err)
	} else {
		out.value = caps.Move(&r.value)
	}
	return
}

// TryClone returns an independent copy of r.
func (r *Result[T, E, A]) TryClone() (out Result[T, E, A], err error) {
	out.failed = r.failed
	if r.failed {
		out.err, err = caps.Clone(&r.err)
	} else {
		out.value, err = caps.Clone(&r.value)
	}
	if err != nil {
		return Result[T, E, A]{}, err
	}
	return
}

// CopyFrom makes r a copy of src. When the discriminants differ the new
// alternative is cloned first and the old one dropped only after that
// succeeded, so a failure leaves r unchanged.
func (r *Result[T, E, A]) CopyFrom(src *Result[T, E, A]) error {
	if r == src {
		return nil
	}
	switch {
	case !r.failed && !src.failed:
		return assign(&r.value, &src.value)
	case r.failed && src.failed:
		return assign(&r.err, &src.err)
	case src.failed:
		e, err := caps.Clone(&src.err)
		if err != nil {
			return err
		}
		caps.Drop(&r.value)
		var zero T
		r.value = zero
		r.err = e
		r.failed = true
	default:
		v, err := caps.Clone(&src.value)
		if err != nil {
			return err
		}
		caps.Drop(&r.err)
		var zero E
		r.err = zero
		r.value = v
		r.failed = false
	}
	return nil
}

// MoveFrom transfers the active alternative of src into r. src keeps its
// discriminant and is left with a moved-from payload.
func (r *Result[T, E, A]) MoveFrom(src *Result[T, E, A]) {
	if r == src {
		return
	}
	r.Reset()
	*r = src.Move()
}

func (r *Result[T, E, A]) Swap(other *Result[T, E, A]) {
	switch {
	case r == other:
	case !r.failed && !other.failed:
		caps.Swap(&r.value, &other.value)
	case r.failed && other.failed:
		caps.Swap(&r.err, &other.err)
	default:
		*r, *other = *other, *r
	}
}

// Do calls f with the success value if r holds one.
func (r *Result[T, E, A]) Do(f func(*T)) {
	if !r.failed {
		f(&r.value)
	}
}

// DoErr calls f with the error value if r holds one.
func (r *Result[T, E, A]) DoErr(f func(*E)) {
	if r.failed {
		f(&r.err)
	}
}

// Ref returns a Result of handles to the active alternative. The handle
// of the inactive one is null.
func (r *Result[T, E, A]) Ref() (out Result[Ref[T], Ref[E], A]) {
	out.failed = r.failed
	if r.failed {
		out.err = RefTo(&r.err)
	} else {
		out.value = RefTo(&r.value)
	}
	return
}

func (r Result[T, E, A]) DeriveCaps() caps.Set {
	return caps.Of[T]().Intersect(caps.Of[E]())
}

func (r Result[T, E, A]) String() string {
	if r.failed {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// MapResult transforms the success value, which f reads in place. An
// error is moved into the output and f is not called.
func MapResult[T, E, U any, A Access](r *Result[T, E, A], f func(*T) U) Result[U, E, A] {
	if r.failed {
		return Result[U, E, A]{err: caps.Move(&r.err), failed: true}
	}
	return Result[U, E, A]{value: f(&r.value)}
}

// MapErr transforms the error value, which f reads in place. A success is
// moved into the output and f is not called.
func MapErr[T, E, F any, A Access](r *Result[T, E, A], f func(*E) F) Result[T, F, A] {
	if !r.failed {
		return Result[T, F, A]{value: caps.Move(&r.value)}
	}
	return Result[T, F, A]{err: f(&r.err), failed: true}
}

// FromError lifts a Go (value, error) pair.
func FromError[T any](v T, err error) Res[T, error] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok[T, error](v)
}
