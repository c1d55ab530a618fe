package chain

// Result is the outcome of threading a value through a sequence of checks.
// It is either valid (no errors observed yet) or invalid (one or more
// checks failed), and always carries the original value unchanged.
//
// A Result is immutable: combinators never modify the receiver's error
// slice, they return a fresh Result instead. Two Results never share a
// backing array, so it is safe to fan a Result out into independent chains.
type Result[V, E any] struct {
	value V
	errs  []E
}

// Begin wraps value as a valid Result, the starting point of every chain.
func Begin[V, E any](value V) Result[V, E] {
	return Result[V, E]{value: value}
}

// Check is the fundamental combinator; every other check in this package
// is expressed through it. The fails predicate is evaluated against the
// carried value regardless of the current state: on a valid Result a
// failure produces an invalid Result with msg as its only error, on an
// invalid Result a failure appends msg to the end of the error list. A
// passing predicate returns r unchanged — prior errors are never cleared,
// so an invalid Result can never become valid again.
func Check[V, E any](fails func(V) bool, msg E, r Result[V, E]) Result[V, E] {
	if !fails(r.value) {
		return r
	}

	errs := make([]E, len(r.errs)+1)
	copy(errs, r.errs)
	errs[len(r.errs)] = msg

	return Result[V, E]{value: r.value, errs: errs}
}

// IsValid reports whether no check has failed so far.
func (r Result[V, E]) IsValid() bool {
	return len(r.errs) == 0
}

// Value returns the carried value. It is the same value that was passed
// to Begin, untouched by any check.
func (r Result[V, E]) Value() V {
	return r.value
}

// Errors returns the accumulated errors in detection order, first failure
// first. It returns nil when the Result is valid and a copy otherwise, so
// callers cannot disturb the Result through the returned slice.
func (r Result[V, E]) Errors() []E {
	if len(r.errs) == 0 {
		return nil
	}

	errs := make([]E, len(r.errs))
	copy(errs, r.errs)
	return errs
}

// Unwrap returns the carried value together with the accumulated errors.
func (r Result[V, E]) Unwrap() (V, []E) {
	return r.value, r.Errors()
}
