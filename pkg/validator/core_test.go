package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelov/authkit/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.Required("name", "Ann"),
			validator.ValidEmail("email", "a@x.com"),
			validator.LengthBetween("password", "secret1", 6, 18),
		)
		assert.NoError(t, err)
	})

	t.Run("collects failures per field", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.Required("name", "  "),
			validator.ValidEmail("email", "not-an-email"),
			validator.LengthBetween("password", "short", 6, 18),
		)
		require.Error(t, err)

		ve := validator.ExtractValidationErrors(err)
		require.Len(t, ve, 3)
		assert.True(t, ve.Has("name"))
		assert.True(t, ve.Has("email"))
		assert.True(t, ve.Has("password"))
		assert.NotEmpty(t, ve.First())
	})
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{"a@x.com", "first.last@example.org"}
	for _, email := range valid {
		assert.True(t, validator.ValidEmail("email", email).Check(), email)
	}

	invalid := []string{"", "plain", "a@", "Name <a@x.com>"}
	for _, email := range invalid {
		assert.False(t, validator.ValidEmail("email", email).Check(), email)
	}
}

func TestLengthBetween(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.LengthBetween("password", "123456", 6, 18).Check())
	assert.True(t, validator.LengthBetween("password", "123456789012345678", 6, 18).Check())
	assert.False(t, validator.LengthBetween("password", "12345", 6, 18).Check())
	assert.False(t, validator.LengthBetween("password", "1234567890123456789", 6, 18).Check())
}
