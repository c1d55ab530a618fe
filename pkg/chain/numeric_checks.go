package chain

// Numeric is the constraint shared by the numeric checks.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min fails when the accessed number is less than min.
func Min[T Numeric, V, E any](get func(V) T, min T, msg E, r Result[V, E]) Result[V, E] {
	return Check(func(v V) bool {
		return get(v) < min
	}, msg, r)
}

// Max fails when the accessed number is greater than max.
func Max[T Numeric, V, E any](get func(V) T, max T, msg E, r Result[V, E]) Result[V, E] {
	return Check(func(v V) bool {
		return get(v) > max
	}, msg, r)
}

// Between fails when the accessed number is outside the inclusive
// [min, max] range.
func Between[T Numeric, V, E any](get func(V) T, min, max T, msg E, r Result[V, E]) Result[V, E] {
	return Check(func(v V) bool {
		n := get(v)
		return n < min || n > max
	}, msg, r)
}

// Positive fails when the accessed number is zero or negative.
func Positive[T Numeric, V, E any](get func(V) T, msg E, r Result[V, E]) Result[V, E] {
	return Check(func(v V) bool {
		return get(v) <= 0
	}, msg, r)
}

// NonNegative fails when the accessed number is negative.
func NonNegative[T Numeric, V, E any](get func(V) T, msg E, r Result[V, E]) Result[V, E] {
	return Check(func(v V) bool {
		return get(v) < 0
	}, msg, r)
}
