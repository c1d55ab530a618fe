// Package chain provides composable, accumulating validation built around
// an immutable Result type: a value is wrapped with Begin, threaded
// through any number of checks, and comes out either valid or invalid
// with every failure message collected along the way.
//
// Unlike fail-fast validation, a chain never short-circuits. Each failing
// check appends its message to the end of the error list in detection
// order, without deduplication, and a passing check never clears errors
// recorded before it — once invalid, a Result stays invalid. The carried
// value itself is never touched.
//
// # Architecture
//
// Check is the single fundamental combinator: it evaluates a failing
// predicate against the carried value and conditionally appends one
// error. Every other check in the package (presence, length, equality,
// pattern, format, numeric, UUID) is a thin specialization of Check,
// grouped one family per file. All combinators take the running Result as
// their final argument and return a new Result, so chains compose left to
// right and the call order is exactly the error order. There is no hidden
// state; everything is a pure function and safe for concurrent use.
//
// # Usage
//
//	res := chain.Begin[LoginForm, string](form)
//	res = chain.Presence(func(f LoginForm) string { return f.Email }, "No email present", res)
//	res = chain.Presence(func(f LoginForm) string { return f.Password }, "No password present", res)
//	res = chain.MinLength(func(f LoginForm) string { return f.Password }, 8, "Password too short", res)
//
//	if !res.IsValid() {
//	    for _, msg := range res.Errors() {
//	        // first failure first
//	    }
//	}
//
// # Error Handling
//
// Validation failure is data, not control flow: no check panics or
// returns an error. The message type E is generic — plain strings are the
// common case, and FieldError is provided for callers who need to know
// which field each failure belongs to. Err bridges a FieldError result
// into a conventional error return, yielding a FieldErrors value that
// implements the error interface and supports errors.As.
//
// Checks that accept a regular expression take a precompiled
// *regexp.Regexp and use contains-a-match semantics; anchoring, if
// wanted, belongs in the pattern.
package chain
