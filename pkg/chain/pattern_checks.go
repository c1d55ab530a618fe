package chain

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var (
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	digitsRegex       = regexp.MustCompile(`^[0-9]+$`)
)

// Match fails when the accessed string contains no match for re. The
// pattern is not anchored: a partial match anywhere in the string passes.
// The caller compiles the pattern once and reuses it across chains.
func Match[V, E any](get func(V) string, re *regexp.Regexp, msg E, r Result[V, E]) Result[V, E] {
	return Check(func(v V) bool {
		return !re.MatchString(get(v))
	}, msg, r)
}

// NoMatch fails when the accessed string contains a match for re.
func NoMatch[V, E any](get func(V) string, re *regexp.Regexp, msg E, r Result[V, E]) Result[V, E] {
	return Check(func(v V) bool {
		return re.MatchString(get(v))
	}, msg, r)
}

// Email fails when the accessed string is not a valid email address.
// The address must parse per RFC 5322 and carry a dotted domain, which
// rejects addresses like "user@localhost" that are valid on paper but
// useless for typical web signup flows.
func Email[V, E any](get func(V) string, msg E, r Result[V, E]) Result[V, E] {
	return Check(func(v V) bool {
		return !isEmail(get(v))
	}, msg, r)
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}

	local, domain := parts[0], parts[1]
	if local == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// URL fails when the accessed string is not an absolute URL with both a
// scheme and a host.
func URL[V, E any](get func(V) string, msg E, r Result[V, E]) Result[V, E] {
	return Check(func(v V) bool {
		value := get(v)
		if strings.TrimSpace(value) == "" {
			return true
		}

		u, err := url.ParseRequestURI(value)
		if err != nil {
			return true
		}

		return u.Scheme == "" || u.Host == ""
	}, msg, r)
}

// Alphanumeric fails when the accessed string is empty or contains
// anything other than ASCII letters and digits.
func Alphanumeric[V, E any](get func(V) string, msg E, r Result[V, E]) Result[V, E] {
	return Check(func(v V) bool {
		return !alphanumericRegex.MatchString(get(v))
	}, msg, r)
}

// Digits fails when the accessed string is empty or contains anything
// other than ASCII digits.
func Digits[V, E any](get func(V) string, msg E, r Result[V, E]) Result[V, E] {
	return Check(func(v V) bool {
		return !digitsRegex.MatchString(get(v))
	}, msg, r)
}
