package caps

import "strings"

// Cap is a single capability predicate over a wrapped type.
type Cap uint

const (
	Object Cap = iota
	NothrowDestructible
	TriviallyDestructible
	CopyConstructible
	NothrowCopyConstructible
	TriviallyCopyable
	CopyAssignable
	NothrowMovable
	TriviallyMovable
	NothrowSwappable
	Trivial
	Tag
	Sane

	numCaps
)

var capNames = [numCaps]string{
	Object:                   "Object",
	NothrowDestructible:      "NothrowDestructible",
	TriviallyDestructible:    "TriviallyDestructible",
	CopyConstructible:        "CopyConstructible",
	NothrowCopyConstructible: "NothrowCopyConstructible",
	TriviallyCopyable:        "TriviallyCopyable",
	CopyAssignable:           "CopyAssignable",
	NothrowMovable:           "NothrowMovable",
	TriviallyMovable:         "TriviallyMovable",
	NothrowSwappable:         "NothrowSwappable",
	Trivial:                  "Trivial",
	Tag:                      "Tag",
	Sane:                     "Sane",
}

func (c Cap) String() string {
	if c < numCaps {
		return capNames[c]
	}
	return "Cap(?)"
}

// Parse resolves a predicate by name, ignoring case.
func Parse(name string) (Cap, bool) {
	for c, n := range capNames {
		if strings.EqualFold(n, name) {
			return Cap(c), true
		}
	}
	return 0, false
}

// All lists every predicate in declaration order.
func All() []Cap {
	cs := make([]Cap, numCaps)
	for i := range cs {
		cs[i] = Cap(i)
	}
	return cs
}

// The conjunction a wrapped type must satisfy to be stored in a container.
var saneRequirements = []Cap{
	Object,
	NothrowDestructible,
	NothrowMovable,
	NothrowSwappable,
}
