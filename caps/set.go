package caps

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Set is an immutable set of predicates. The zero Set is empty.
type Set struct {
	bits *bitset.BitSet
}

func setOf(cs ...Cap) Set {
	b := bitset.New(uint(numCaps))
	for _, c := range cs {
		b.Set(uint(c))
	}
	return Set{b}
}

func (s Set) with(c Cap, cond bool) Set {
	if cond {
		s.bits.Set(uint(c))
	}
	return s
}

func (s Set) Has(c Cap) bool { return s.bits != nil && s.bits.Test(uint(c)) }

// All reports whether every one of cs holds.
func (s Set) All(cs ...Cap) bool {
	if len(cs) == 0 {
		return true
	}
	if s.bits == nil {
		return false
	}
	return s.bits.IsSuperSet(setOf(cs...).bits)
}

// Any reports whether at least one of cs holds.
func (s Set) Any(cs ...Cap) bool {
	if s.bits == nil {
		return false
	}
	return s.bits.IntersectionCardinality(setOf(cs...).bits) != 0
}

// Missing returns the members of cs that do not hold, in ascending order.
func (s Set) Missing(cs ...Cap) []Cap {
	want := setOf(cs...).bits
	if s.bits != nil {
		want = want.Difference(s.bits)
	}
	return collect(want)
}

// Intersect keeps the predicates holding in both s and other.
func (s Set) Intersect(other Set) Set {
	if s.bits == nil || other.bits == nil {
		return Set{}
	}
	return Set{s.bits.Intersection(other.bits)}
}

func (s Set) Caps() []Cap {
	if s.bits == nil {
		return nil
	}
	return collect(s.bits)
}

func (s Set) Equal(other Set) bool {
	switch {
	case s.bits == nil || other.bits == nil:
		return s.Len() == other.Len()
	default:
		return s.bits.Equal(other.bits)
	}
}

func (s Set) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

func (s Set) String() string {
	cs := s.Caps()
	if len(cs) == 0 {
		return "{}"
	}
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.String()
	}
	return "{" + strings.Join(names, "|") + "}"
}

func collect(b *bitset.BitSet) []Cap {
	var cs []Cap
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		cs = append(cs, Cap(i))
	}
	return cs
}
