package subscriber_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newsletter/internal/subscriber"
	"github.com/dmitrymomot/newsletter/pkg/validator"
)

func TestParseEmail(t *testing.T) {
	t.Parallel()

	t.Run("valid email is accepted", func(t *testing.T) {
		t.Parallel()

		addr, err := subscriber.ParseEmail("ursula_le_guin@gmail.com")
		require.NoError(t, err)
		assert.Equal(t, "ursula_le_guin@gmail.com", addr.String())
	})

	t.Run("empty is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := subscriber.ParseEmail("")
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("missing at symbol is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := subscriber.ParseEmail("datnguyen.com")
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("missing local part is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := subscriber.ParseEmail("@gmail.com")
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("validation error names the email field", func(t *testing.T) {
		t.Parallel()

		_, err := subscriber.ParseEmail("not-an-email")
		require.Error(t, err)
		ve := validator.ExtractValidationErrors(err)
		require.NotEmpty(t, ve)
		assert.True(t, ve.Has("email"))
	})
}
