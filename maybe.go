// Package maybe provides value holders for an optional value (Maybe) and
// for a success-or-error pair (Result).
//
// Both follow the lifecycle hooks of the wrapped type declared in package
// caps: a holder drops, clones, moves and swaps its payload exactly the way
// the payload itself allows, and falls back to plain assignment for
// trivial types. Holders are single-goroutine values.
package maybe

import (
	"fmt"

	"github.com/hsfzxjy/maybe/caps"
)

// Maybe holds zero or one T.
//
// S selects the storage: Flag keeps a boolean beside the value, Elided
// reserves a sentinel of T and takes no extra space. A is the access
// policy applied to Unwrap and Deref.
//
// The zero Maybe is empty, except for an Elided storage whose sentinel
// is not the zero T; build those with Empty.
type Maybe[T any, S Storage[T, S], A Access] struct {
	tag   S
	value T
}

type (
	Of[T any]                         = Maybe[T, Flag[T], Checked]
	Elide[T any, P SentinelPolicy[T]] = Maybe[T, Elided[T, P], Checked]
	RefOf[T any]                      = Maybe[Ref[T], Elided[Ref[T], NullRef[T]], Checked]
)

func Some[T any](v T) Of[T] { return Make[T, Flag[T], Checked](v) }
func None[T any]() Of[T]    { return Of[T]{} }

func Make[T any, S Storage[T, S], A Access](v T) Maybe[T, S, A] {
	m := Empty[T, S, A]()
	m.Emplace(v)
	return m
}

func Empty[T any, S Storage[T, S], A Access]() (m Maybe[T, S, A]) {
	sane[T]()
	m.tag.clear(&m.tag, &m.value)
	return
}

// MakeWith builds the payload in place with ctor. On failure the holder
// is empty and the error is returned.
func MakeWith[T any, S Storage[T, S], A Access](ctor func() (T, error)) (Maybe[T, S, A], error) {
	m := Empty[T, S, A]()
	_, err := m.TryEmplace(ctor)
	return m, err
}

func (m Maybe[T, S, A]) HasValue() bool { return m.tag.present(&m.tag, &m.value) }
func (m Maybe[T, S, A]) IsEmpty() bool  { return !m.HasValue() }

func (m *Maybe[T, S, A]) present() bool { return m.tag.present(&m.tag, &m.value) }

// Reset drops the payload, if any, and leaves m empty.
func (m *Maybe[T, S, A]) Reset() {
	if m.present() {
		caps.Drop(&m.value)
	}
	m.tag.clear(&m.tag, &m.value)
}

// Drop releases the payload. It makes a Maybe usable as a payload itself.
func (m *Maybe[T, S, A]) Drop() { m.Reset() }

// Emplace replaces the payload with v and returns a pointer to it. m
// takes ownership of v.
func (m *Maybe[T, S, A]) Emplace(v T) *T {
	sane[T]()
	if m.present() {
		reconstructNothrow(&m.value, v)
	} else {
		m.value = v
	}
	m.tag.fill(&m.tag, &m.value)
	return &m.value
}

// TryEmplace replaces the payload with the one built by ctor. If ctor
// fails or panics, m keeps its previous state.
func (m *Maybe[T, S, A]) TryEmplace(ctor func() (T, error)) (*T, error) {
	sane[T]()
	if m.present() {
		if err := reconstruct(&m.value, ctor); err != nil {
			return nil, err
		}
		return &m.value, nil
	}
	v, err := ctor()
	if err != nil {
		return nil, err
	}
	m.value = v
	m.tag.fill(&m.tag, &m.value)
	return &m.value, nil
}

// Unwrap returns the payload, subject to the unwrap policy of A. The
// result shares whatever the payload points to; use TryClone for an
// independent copy.
func (m Maybe[T, S, A]) Unwrap() T {
	var a A
	if a.rejectUnwrap(m.HasValue()) {
		panic(badAccess("Unwrap", 1))
	}
	return m.value
}

// UnwrapMut returns a pointer to the payload, subject to the unwrap
// policy of A.
func (m *Maybe[T, S, A]) UnwrapMut() *T {
	var a A
	if a.rejectUnwrap(m.present()) {
		panic(badAccess("UnwrapMut", 1))
	}
	return &m.value
}

// UnwrapUnchecked returns the slot as is. m must not be empty.
func (m Maybe[T, S, A]) UnwrapUnchecked() T { return m.value }

// Deref returns a pointer to the payload, subject to the deref policy of A.
func (m *Maybe[T, S, A]) Deref() *T {
	var a A
	if a.rejectDeref(m.present()) {
		panic(badAccess("Deref", 1))
	}
	return &m.value
}

// Extract moves the payload out, leaving m empty. It is subject to the
// unwrap policy of A.
func (m *Maybe[T, S, A]) Extract() T {
	var a A
	if a.rejectUnwrap(m.present()) {
		panic(badAccess("Extract", 1))
	}
	v := caps.Move(&m.value)
	m.tag.clear(&m.tag, &m.value)
	return v
}

func (m Maybe[T, S, A]) Get() (T, bool) {
	if !m.HasValue() {
		var zero T
		return zero, false
	}
	return m.value, true
}

func (m Maybe[T, S, A]) Or(def T) T {
	if !m.HasValue() {
		return def
	}
	return m.value
}

// Move transfers the holder out, leaving m empty.
func (m *Maybe[T, S, A]) Move() (out Maybe[T, S, A]) {
	out.MoveFrom(m)
	return
}

// TryClone returns an independent copy of m.
func (m *Maybe[T, S, A]) TryClone() (Maybe[T, S, A], error) {
	out := Empty[T, S, A]()
	if !m.present() {
		return out, nil
	}
	v, err := caps.Clone(&m.value)
	if err != nil {
		return out, err
	}
	out.value = v
	out.tag.fill(&out.tag, &out.value)
	return out, nil
}

// CopyFrom makes m a copy of src. When both hold a value the payload is
// assigned in place; a failed assignment leaves m unchanged.
func (m *Maybe[T, S, A]) CopyFrom(src *Maybe[T, S, A]) error {
	if m == src {
		return nil
	}
	switch here, there := m.present(), src.present(); {
	case here && there:
		return assign(&m.value, &src.value)
	case here:
		m.Reset()
		return nil
	case there:
		v, err := caps.Clone(&src.value)
		if err != nil {
			return err
		}
		m.value = v
		m.tag.fill(&m.tag, &m.value)
	}
	return nil
}

// MoveFrom transfers the payload of src into m, leaving src empty.
func (m *Maybe[T, S, A]) MoveFrom(src *Maybe[T, S, A]) {
	if m == src {
		return
	}
	m.Reset()
	if !src.present() {
		return
	}
	m.value = caps.Move(&src.value)
	m.tag.fill(&m.tag, &m.value)
	src.tag.clear(&src.tag, &src.value)
}

func (m *Maybe[T, S, A]) Swap(other *Maybe[T, S, A]) {
	if m == other {
		return
	}
	if m.present() && other.present() {
		caps.Swap(&m.value, &other.value)
		return
	}
	*m, *other = *other, *m
}

// Do calls f with the payload if there is one.
func (m *Maybe[T, S, A]) Do(f func(*T)) {
	if m.present() {
		f(&m.value)
	}
}

// Ref returns a Maybe of a handle to the payload. The handle aliases m,
// which therefore has to be addressable.
func (m *Maybe[T, S, A]) Ref() Maybe[Ref[T], Elided[Ref[T], NullRef[T]], A] {
	var out Maybe[Ref[T], Elided[Ref[T], NullRef[T]], A]
	if m.present() {
		out.value = RefTo(&m.value)
	}
	return out
}

func (m Maybe[T, S, A]) DeriveCaps() caps.Set { return caps.Of[T]() }

func (m Maybe[T, S, A]) String() string {
	if !m.HasValue() {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", m.value)
}
