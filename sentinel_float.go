package maybe

import (
	"math"
	"unsafe"
)

const (
	canonicalNaN64 uint64 = 0xFFFF_FFFF_FFFF_FFFF
	canonicalNaN32 uint32 = 0xFFFF_FFFF
)

type Float interface{ ~float32 | ~float64 }

// NaN reserves NaN. Every NaN payload reads as empty; the sentinel written
// on Reset is the canonical all-ones NaN.
type NaN[F Float] struct{}

func (NaN[F]) SentinelValue() F {
	var f F
	if unsafe.Sizeof(f) == 4 {
		return F(math.Float32frombits(canonicalNaN32))
	}
	return F(math.Float64frombits(canonicalNaN64))
}

func (NaN[F]) IsSentinelValue(v *F) bool { return *v != *v }
