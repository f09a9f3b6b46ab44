package maybe_test

import "errors"

// tracked counts its live instances in *live.
type tracked struct {
	id   int
	live *int
}

func newTracked(id int, live *int) tracked {
	*live++
	return tracked{id, live}
}

func (t *tracked) Drop() {
	if t.live != nil {
		*t.live--
		t.live = nil
	}
}

func (t *tracked) Clone() tracked { return newTracked(t.id, t.live) }

var errFlaky = errors.New("flaky clone")

// flaky is a tracked whose cloning fails on demand.
type flaky struct {
	tracked
	fail bool
}

func (f *flaky) TryClone() (flaky, error) {
	if f.fail {
		return flaky{}, errFlaky
	}
	return flaky{tracked: f.tracked.Clone()}, nil
}

// assignable records assignments made in place.
type assignable struct {
	val     []int
	assigns *int
}

func (a *assignable) Clone() assignable {
	return assignable{append([]int(nil), a.val...), a.assigns}
}

func (a *assignable) Assign(src *assignable) {
	*a.assigns++
	a.val = append(a.val[:0], src.val...)
}

// handle has a Drop but no Clone, so plain copies would release it twice.
type handle struct{ fd *int }

func (h *handle) Drop() {}

// swapper records that its Swap hook ran.
type swapper struct{ swapped *bool }

func (s *swapper) Swap(o *swapper) {
	*s.swapped = true
	s.swapped, o.swapped = o.swapped, s.swapped
}
