package objectid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"logisocial/pkg/errors"
)

func TestIsValid(t *testing.T) {
	cases := map[string]bool{
		"507f1f77bcf86cd799439011":  true,
		"507F1F77BCF86CD799439011":  true,
		"abc":                       false,
		"":                          false,
		"507f1f77bcf86cd79943901":   false,
		"507f1f77bcf86cd7994390111": false,
		"zzzf1f77bcf86cd799439011":  false,
	}
	for in, want := range cases {
		assert.Equal(t, want, IsValid(in), in)
	}
}

func TestParse(t *testing.T) {
	id := primitive.NewObjectID()

	got, err := Parse(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = Parse("abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeValidation))
}
