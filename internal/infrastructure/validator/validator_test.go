package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateEmail("buyer@example.com"))
	assert.Error(t, v.ValidateEmail("not-an-email"))
	assert.Error(t, v.ValidateEmail(""))
}

func TestValidateUsername(t *testing.T) {
	v := NewValidator()

	cases := map[string]bool{
		"alice":       true,
		"a_1":         true,
		"Bob_2024":    true,
		"ab":          false,
		"1alice":      false,
		"_alice":      false,
		"alice-smith": false,
		"al ice":      false,
	}
	for name, ok := range cases {
		err := v.ValidateUsername(name)
		if ok {
			assert.NoError(t, err, name)
		} else {
			assert.Error(t, err, name)
		}
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidatePasswordStrength("secret"))
	assert.Error(t, v.ValidatePasswordStrength("short"))
	assert.Error(t, v.ValidatePasswordStrength(strings.Repeat("x", 73)))
}

type signup struct {
	Username string `validate:"required,username"`
	Password string `validate:"required,password"`
}

func TestRegisteredTags(t *testing.T) {
	av := NewValidator().(*AppValidator)

	assert.NoError(t, av.validate.Struct(signup{Username: "alice", Password: "secret1"}))
	assert.Error(t, av.validate.Struct(signup{Username: "9lives", Password: "secret1"}))
	assert.Error(t, av.validate.Struct(signup{Username: "alice", Password: "123"}))
}
