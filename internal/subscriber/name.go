package subscriber

import "github.com/dmitrymomot/newsletter/pkg/validator"

// forbiddenNameChars are rejected in display names to keep stored values
// safe to embed in HTML email bodies and SQL tooling output.
var forbiddenNameChars = []rune{'/', '(', ')', '"', '<', '>', '\\', '{', '}'}

const maxNameLen = 256

// Name is a validated subscriber display name.
type Name struct {
	value string
}

// ParseName validates a raw display name and returns it as a typed value.
func ParseName(raw string) (Name, error) {
	if err := validator.Apply(
		validator.RequiredString("name", raw),
		validator.MaxLenString("name", raw, maxNameLen),
		validator.WithoutChars("name", raw, forbiddenNameChars),
	); err != nil {
		return Name{}, err
	}
	return Name{value: raw}, nil
}

func (n Name) String() string {
	return n.value
}
