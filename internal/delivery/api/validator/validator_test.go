package validator

import (
	"testing"

	domainerrors "ethos/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Nickname string `json:"-" validate:"omitempty,max=3"`
}

func TestCustomValidator_Validate(t *testing.T) {
	t.Parallel()

	v := New()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, v.Validate(&signup{Email: "a@b.co", Password: "12345678"}))
	})

	t.Run("reports every field by json name", func(t *testing.T) {
		t.Parallel()

		err := v.Validate(&signup{Email: "nope", Password: "123"})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "email: must be a valid email address; password: must be at least 8 characters long", appErr.Details())
	})

	t.Run("required", func(t *testing.T) {
		t.Parallel()

		err := v.Validate(&signup{})

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Details(), "email: is required")
		assert.Contains(t, appErr.Details(), "password: is required")
	})
}
