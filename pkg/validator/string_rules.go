package validator

import (
	"fmt"
	"strings"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

// MaxLenString validates that a string does not exceed max bytes.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
		},
	}
}

// WithoutChars validates that a string contains none of the forbidden runes.
func WithoutChars(field, value string, forbidden []rune) Rule {
	return Rule{
		Check: func() bool {
			return !strings.ContainsAny(value, string(forbidden))
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must not contain any of %q", string(forbidden)),
		},
	}
}
