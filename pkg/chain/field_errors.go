package chain

import (
	"fmt"
	"strings"
)

// FieldError identifies which field a failed check was about. The error
// type E is fully generic throughout this package; FieldError is the
// recommended concrete choice when callers need to attribute failures to
// individual fields rather than inspect bare message strings.
type FieldError struct {
	Field   string
	Message string
}

// Field builds a FieldError. It reads well inline in a chain:
//
//	chain.Presence(getEmail, chain.Field("email", "is required"), res)
func Field(field, message string) FieldError {
	return FieldError{Field: field, Message: message}
}

func (fe FieldError) Error() string {
	return fmt.Sprintf("%s: %s", fe.Field, fe.Message)
}

// FieldErrors is the error-interface view of an invalid chain result.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(fe))
	for _, err := range fe {
		parts = append(parts, err.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any error was recorded for the given field.
func (fe FieldErrors) Has(field string) bool {
	for _, err := range fe {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for the given field, in detection order.
func (fe FieldErrors) Get(field string) []string {
	var messages []string
	for _, err := range fe {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the distinct fields with errors, in first-seen order.
func (fe FieldErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range fe {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (fe FieldErrors) IsEmpty() bool {
	return len(fe) == 0
}

// Err converts a FieldError chain result into a plain error return: nil
// when the result is valid, FieldErrors otherwise. Use errors.As to
// recover the structured form at the boundary.
func Err[V any](r Result[V, FieldError]) error {
	if r.IsValid() {
		return nil
	}
	return FieldErrors(r.Errors())
}
