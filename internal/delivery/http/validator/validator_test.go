package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signinForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&signinForm{Email: "a@example.com", Password: "pw"}))

	err := v.Validate(&signinForm{Email: "a@example.com"})
	require.Error(t, err)
	assert.Equal(t, []string{"Password"}, FailedFields(err))

	err = v.Validate(&signinForm{})
	assert.Equal(t, []string{"Email", "Password"}, FailedFields(err))
}

func TestFailedFields_OtherErrors(t *testing.T) {
	assert.Nil(t, FailedFields(errors.New("boom")))
	assert.Nil(t, FailedFields(nil))
}
