package chain

import "slices"

// Equals fails when left and right differ under value equality. The
// operands are independent of the carried value; commonly one is derived
// from it and the other is a constant supplied by the caller.
func Equals[T comparable, V, E any](left, right T, msg E, r Result[V, E]) Result[V, E] {
	return Check(func(V) bool {
		return left != right
	}, msg, r)
}

// NotEquals fails when left and right are equal.
func NotEquals[T comparable, V, E any](left, right T, msg E, r Result[V, E]) Result[V, E] {
	return Check(func(V) bool {
		return left == right
	}, msg, r)
}

// OneOf fails when the accessed value is not among the allowed values.
func OneOf[T comparable, V, E any](get func(V) T, allowed []T, msg E, r Result[V, E]) Result[V, E] {
	return Check(func(v V) bool {
		return !slices.Contains(allowed, get(v))
	}, msg, r)
}

// NoneOf fails when the accessed value is among the forbidden values.
func NoneOf[T comparable, V, E any](get func(V) T, forbidden []T, msg E, r Result[V, E]) Result[V, E] {
	return Check(func(v V) bool {
		return slices.Contains(forbidden, get(v))
	}, msg, r)
}
