package maybe

// SentinelPolicy reserves one value of T to mean "empty", letting a Maybe
// drop its discriminant. Policies are normally zero-size types.
type SentinelPolicy[T any] interface {
	SentinelValue() T
	IsSentinelValue(v *T) bool
}

// ZeroSentinel reserves the zero value of T.
type ZeroSentinel[T comparable] struct{}

func (ZeroSentinel[T]) SentinelValue() T {
	var zero T
	return zero
}

func (ZeroSentinel[T]) IsSentinelValue(v *T) bool {
	var zero T
	return *v == zero
}
