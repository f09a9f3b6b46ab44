package caps

// Lifecycle hooks a wrapped type may implement on its pointer receiver.
// A type implementing none of them is moved, copied and destroyed by plain
// assignment.
type (
	// Dropper releases what the value owns. Drop must be a no-op on a zero
	// or moved-from value.
	Dropper interface{ Drop() }

	Cloner[T any]    interface{ Clone() T }
	TryCloner[T any] interface{ TryClone() (T, error) }

	// Mover transfers the value out, leaving the receiver moved-from.
	Mover[T any] interface{ Move() T }

	Assigner[T any] interface{ Assign(src *T) }
	Swapper[T any]  interface{ Swap(other *T) }
)

// TagBase marks a type as a tag type. Tag types steer construction and
// can never be wrapped.
type TagBase struct{}

func (TagBase) tag() {}

// TagType is implemented by every type embedding TagBase.
type TagType interface{ tag() }

func Drop[T any](v *T) {
	if d, ok := any(v).(Dropper); ok {
		d.Drop()
	}
}

// Move transfers *v out. Without a Mover hook the slot is zeroed when T
// owns resources (has a Dropper), and left intact otherwise.
func Move[T any](v *T) T {
	switch m := any(v).(type) {
	case Mover[T]:
		return m.Move()
	case Dropper:
		out := *v
		var zero T
		*v = zero
		return out
	default:
		return *v
	}
}

// Clone duplicates *v.
func Clone[T any](v *T) (T, error) {
	switch c := any(v).(type) {
	case TryCloner[T]:
		return c.TryClone()
	case Cloner[T]:
		return c.Clone(), nil
	}
	if !Of[T]().Has(CopyConstructible) {
		var zero T
		return zero, &Error{Type: typeOf[T](), Missing: []Cap{CopyConstructible}}
	}
	return *v, nil
}

func Swap[T any](a, b *T) {
	if a == b {
		return
	}
	if s, ok := any(a).(Swapper[T]); ok {
		s.Swap(b)
		return
	}
	*a, *b = *b, *a
}
