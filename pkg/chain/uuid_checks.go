package chain

import "github.com/google/uuid"

// UUID fails when the accessed string is not a canonical UUID. Length and
// hyphen positions are checked first so obviously malformed input skips
// the parse.
func UUID[V, E any](get func(V) string, msg E, r Result[V, E]) Result[V, E] {
	return Check(func(v V) bool {
		return !isUUID(get(v))
	}, msg, r)
}

// NonNilUUID fails when the accessed UUID is the nil (all-zero) UUID.
func NonNilUUID[V, E any](get func(V) uuid.UUID, msg E, r Result[V, E]) Result[V, E] {
	return Check(func(v V) bool {
		return get(v) == uuid.Nil
	}, msg, r)
}

func isUUID(value string) bool {
	if len(value) != 36 {
		return false
	}

	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}

	_, err := uuid.Parse(value)
	return err == nil
}
