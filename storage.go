package maybe

// Storage selects how a Maybe tells a present value from an absent one.
// It is implemented by Flag and Elided only.
//
// The methods ignore their receiver and act on the tag s and the slot v of
// the holder, so that a zero-size tag costs no space.
type Storage[T any, S any] interface {
	present(s *S, v *T) bool
	// fill marks the slot as present after a value was written to it.
	fill(s *S, v *T)
	// clear makes the slot absent. The payload must be dropped or moved
	// out beforehand.
	clear(s *S, v *T)
	elided() bool
}

// Flag keeps an explicit boolean beside the slot. The zero value is empty.
type Flag[T any] struct {
	set bool
}

func (Flag[T]) present(s *Flag[T], _ *T) bool { return s.set }
func (Flag[T]) fill(s *Flag[T], _ *T)         { s.set = true }
func (Flag[T]) elided() bool                  { return false }

func (Flag[T]) clear(s *Flag[T], v *T) {
	// release whatever the moved-out payload still points to
	var zero T
	*v = zero
	s.set = false
}

// Elided stores no discriminant at all: the slot is empty while it holds
// the sentinel of P. Writing the sentinel through Emplace empties the
// holder.
type Elided[T any, P SentinelPolicy[T]] struct{}

func (Elided[T, P]) present(_ *Elided[T, P], v *T) bool {
	var p P
	return !p.IsSentinelValue(v)
}

func (Elided[T, P]) fill(*Elided[T, P], *T) {}
func (Elided[T, P]) elided() bool           { return true }

func (Elided[T, P]) clear(_ *Elided[T, P], v *T) {
	var p P
	*v = p.SentinelValue()
}
