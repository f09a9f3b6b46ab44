package maybe

import "unsafe"

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

func signed[I Integer]() bool {
	var i I
	i--
	return i < 0
}

func minInt[I Integer]() I {
	if !signed[I]() {
		return 0
	}
	var i I
	return I(1) << (unsafe.Sizeof(i)*8 - 1)
}

func maxInt[I Integer]() I { return ^minInt[I]() }

// MinInt reserves the smallest value of I.
type MinInt[I Integer] struct{}

func (MinInt[I]) SentinelValue() I          { return minInt[I]() }
func (MinInt[I]) IsSentinelValue(v *I) bool { return *v == minInt[I]() }

// MaxInt reserves the largest value of I.
type MaxInt[I Integer] struct{}

func (MaxInt[I]) SentinelValue() I          { return maxInt[I]() }
func (MaxInt[I]) IsSentinelValue(v *I) bool { return *v == maxInt[I]() }
