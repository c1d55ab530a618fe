package sanitizer

import (
	"strings"
	"unicode"
)

// Apply runs value through the given transforms in order and returns the
// final result.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value
	for _, transform := range transforms {
		result = transform(result)
	}
	return result
}

// Compose bundles transforms into a single reusable function. Prefer it
// over repeated Apply calls when the same pipeline runs more than once.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// TrimToLower trims whitespace and lowercases in one step, the usual
// preparation for identifiers and email addresses.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CollapseWhitespace trims the string and replaces every run of interior
// whitespace with a single space.
func CollapseWhitespace(s string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace {
			b.WriteByte(' ')
			inSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// KeepDigits strips everything but ASCII digits.
func KeepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeEmail lowercases an email address and trims surrounding
// whitespace. It deliberately does not touch plus-addressing or dots in
// the local part; those are provider conventions, not syntax.
func NormalizeEmail(email string) string {
	return TrimToLower(email)
}
