package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Role string `json:"role" validate:"required,oneof=user assistant"`
}

type sample struct {
	Email string `json:"email" validate:"required,email"`
	Items []item `json:"items" validate:"dive"`
}

func TestValidator_Struct(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	require.NoError(t, v.Struct(sample{Email: "ana@x.com", Items: []item{{Role: "user"}}}))

	err = v.Struct(sample{Email: "nope", Items: []item{{Role: "model"}}})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "items[0].role")
	assert.Contains(t, verr.Fields["email"], "valid email")
}

type named struct {
	Name string `json:"name" validate:"required,notblank"`
}

func TestValidator_NotBlank(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	require.NoError(t, v.Struct(named{Name: " Ana "}))

	for _, name := range []string{" ", "\t\n", "   "} {
		err := v.Struct(named{Name: name})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "name %q", name)
		assert.Equal(t, "name must not be blank", verr.Fields["name"])
	}
}
