package maybe

import "github.com/hsfzxjy/maybe/caps"

// sane panics unless T may be wrapped.
func sane[T any]() { caps.Require[T](caps.Sane) }

// reconstruct replaces the live value in slot with the one built by ctor.
// If ctor fails or panics the old value is put back before the failure
// propagates, so slot never stays destroyed.
func reconstruct[T any](slot *T, ctor func() (T, error)) error {
	backup := caps.Move(slot)
	caps.Drop(slot)
	restore := true
	defer func() {
		if restore {
			*slot = backup
		}
	}()

	v, err := ctor()
	if err != nil {
		return err
	}
	restore = false
	caps.Drop(&backup)
	*slot = v
	return nil
}

// reconstructNothrow replaces the live value in slot with v, which is
// already built.
func reconstructNothrow[T any](slot *T, v T) {
	caps.Drop(slot)
	*slot = v
}

// assign makes the live value in dst a copy of the live value in src. An
// Assign hook is preferred over destroying and rebuilding dst.
func assign[T any](dst, src *T) error {
	if dst == src {
		return nil
	}
	if a, ok := any(dst).(caps.Assigner[T]); ok {
		a.Assign(src)
		return nil
	}
	set := caps.Of[T]()
	switch {
	case set.Has(caps.Trivial):
		*dst = *src
		return nil
	case set.Has(caps.NothrowCopyConstructible):
		v, _ := caps.Clone(src)
		reconstructNothrow(dst, v)
		return nil
	}
	if err := caps.Check[T](caps.CopyAssignable); err != nil {
		return err
	}
	return reconstruct(dst, func() (T, error) { return caps.Clone(src) })
}
