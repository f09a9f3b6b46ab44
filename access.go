package maybe

// Validator decides whether an access to a possibly empty slot is refused.
// It is implemented by Check and NoCheck only.
type Validator interface {
	Reject(present bool) bool
	validator()
}

// Check refuses access to an absent value.
type Check struct{}

func (Check) Reject(present bool) bool { return !present }
func (Check) validator()               {}

// NoCheck never refuses. Reading an absent value through it yields
// whatever the slot currently holds.
type NoCheck struct{}

func (NoCheck) Reject(bool) bool { return false }
func (NoCheck) validator()       {}

// Access bundles the validators of a container. It is implemented by
// Policy only.
type Access interface {
	rejectUnwrap(present bool) bool
	rejectDeref(present bool) bool
}

// Policy guards the Unwrap family with U and the Deref family with D.
type Policy[U, D Validator] struct{}

func (Policy[U, D]) rejectUnwrap(present bool) bool {
	var u U
	return u.Reject(present)
}

func (Policy[U, D]) rejectDeref(present bool) bool {
	var d D
	return d.Reject(present)
}

type (
	Checked        = Policy[Check, Check]
	UncheckedDeref = Policy[Check, NoCheck]
	Unchecked      = Policy[NoCheck, NoCheck]
)
