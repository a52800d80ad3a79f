package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePasswordLogin(t *testing.T) {
	assert.Equal(t, MsgPasswordRequired, ValidatePasswordLogin(""))
	assert.Empty(t, ValidatePasswordLogin("x"))
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{name: "empty", password: "", want: MsgPasswordRequired},
		{name: "too short", password: "1234567", want: MsgPasswordTooShort},
		{name: "exactly minimum", password: "12345678", want: ""},
		{name: "long enough", password: "correct horse battery staple", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePasswordStrength(tt.password))
		})
	}
}

func TestValidatePasswordConfirmation(t *testing.T) {
	assert.Empty(t, ValidatePasswordConfirmation("secret12", "secret12"))
	assert.Equal(t, MsgPasswordsDiffer, ValidatePasswordConfirmation("secret12", "secret13"))
	assert.Equal(t, MsgPasswordsDiffer, ValidatePasswordConfirmation("secret12", ""))
}
