package maybe

// Map applies f to the payload of m and wraps the outcome. f is not called
// when m is empty.
func Map[T, U any, S Storage[T, S], A Access](m Maybe[T, S, A], f func(T) U) (out Maybe[U, Flag[U], A]) {
	if m.HasValue() {
		out.Emplace(f(m.value))
	}
	return
}

// MapPtr is Map with f reading the payload in place.
func MapPtr[T, U any, S Storage[T, S], A Access](m *Maybe[T, S, A], f func(*T) U) (out Maybe[U, Flag[U], A]) {
	if m.present() {
		out.Emplace(f(&m.value))
	}
	return
}

// AndThen chains a computation that may itself come up empty.
func AndThen[T, U any, S Storage[T, S], A Access](m Maybe[T, S, A], f func(T) Maybe[U, Flag[U], A]) Maybe[U, Flag[U], A] {
	if !m.HasValue() {
		return Maybe[U, Flag[U], A]{}
	}
	return f(m.value)
}
