package subscriber

import "github.com/dmitrymomot/newsletter/pkg/validator"

// EmailAddress is a syntactically valid email address. The zero value is
// invalid; obtain one through ParseEmail.
type EmailAddress struct {
	value string
}

// ParseEmail validates a raw address and returns it as a typed value.
// Rejections come back as validator.ValidationErrors.
func ParseEmail(raw string) (EmailAddress, error) {
	if err := validator.Apply(
		validator.RequiredString("email", raw),
		validator.ValidEmail("email", raw),
	); err != nil {
		return EmailAddress{}, err
	}
	return EmailAddress{value: raw}, nil
}

func (e EmailAddress) String() string {
	return e.value
}
