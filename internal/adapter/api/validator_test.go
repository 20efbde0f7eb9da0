package api

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorUsesJSONNames(t *testing.T) {
	type request struct {
		UserID string `json:"userId" validate:"required"`
	}

	err := NewValidator().Validate(&request{})
	require.Error(t, err)

	var fieldErrs validator.ValidationErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "userId", fieldErrs[0].Field())
	assert.Equal(t, "required", fieldErrs[0].Tag())

	assert.NoError(t, NewValidator().Validate(&request{UserID: "u1"}))
}
