package maybe

import "fmt"

// Ref is a non-owning handle to a T. A Ref is never nil, except for the
// one made by UnsafeNullRef, which only serves as a sentinel.
type Ref[T any] struct {
	p *T
}

func RefTo[T any](p *T) Ref[T] {
	if p == nil {
		panic("maybe: RefTo called with a nil pointer")
	}
	return Ref[T]{p}
}

// UnsafeNullRef returns the null handle. It must never be dereferenced.
func UnsafeNullRef[T any]() Ref[T] { return Ref[T]{} }

func (r Ref[T]) Get() *T      { return r.p }
func (r Ref[T]) Value() T     { return *r.p }
func (r Ref[T]) IsNull() bool { return r.p == nil }

func (r Ref[T]) String() string {
	if r.p == nil {
		return "Ref(null)"
	}
	return fmt.Sprintf("Ref(%v)", *r.p)
}

// NullRef reserves the null handle, so a Maybe of a Ref has the size of a
// pointer.
type NullRef[T any] struct{}

func (NullRef[T]) SentinelValue() Ref[T]          { return UnsafeNullRef[T]() }
func (NullRef[T]) IsSentinelValue(r *Ref[T]) bool { return r.p == nil }
