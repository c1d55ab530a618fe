package chain

import (
	"strings"
	"unicode/utf8"
)

// Presence fails when the accessed string is empty. Whitespace counts as
// content; use NotBlank to reject whitespace-only values.
func Presence[V, E any](get func(V) string, msg E, r Result[V, E]) Result[V, E] {
	return Check(func(v V) bool {
		return get(v) == ""
	}, msg, r)
}

// NotBlank fails when the accessed string is empty after trimming whitespace.
func NotBlank[V, E any](get func(V) string, msg E, r Result[V, E]) Result[V, E] {
	return Check(func(v V) bool {
		return strings.TrimSpace(get(v)) == ""
	}, msg, r)
}

// MinLength fails when the accessed string is shorter than min characters.
// Length is counted in runes, not bytes.
func MinLength[V, E any](get func(V) string, min int, msg E, r Result[V, E]) Result[V, E] {
	return Check(func(v V) bool {
		return utf8.RuneCountInString(get(v)) < min
	}, msg, r)
}

// MaxLength fails when the accessed string is longer than max characters.
func MaxLength[V, E any](get func(V) string, max int, msg E, r Result[V, E]) Result[V, E] {
	return Check(func(v V) bool {
		return utf8.RuneCountInString(get(v)) > max
	}, msg, r)
}

// ExactLength fails when the accessed string is not exactly length characters.
func ExactLength[V, E any](get func(V) string, length int, msg E, r Result[V, E]) Result[V, E] {
	return Check(func(v V) bool {
		return utf8.RuneCountInString(get(v)) != length
	}, msg, r)
}
