package validation

import (
	"errors"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

// ValidateLoginForm runs the login pipeline: email format, then password
// presence. It short-circuits on the first failure and tags its field.
func ValidateLoginForm(email, password string) Result {
	if msg := ValidateEmail(email); msg != "" {
		return invalid(msg, FieldEmail)
	}
	if msg := ValidatePasswordLogin(password); msg != "" {
		return invalid(msg, FieldPassword)
	}
	return valid()
}

// HandleLoginError maps a login failure from the user store onto a
// display message and the field to highlight. Unknown errors fall back to
// their own message, or a generic one, untagged.
func HandleLoginError(err error) ErrorResult {
	switch {
	case errors.Is(err, common.ErrUserNotFound):
		return ErrorResult{Message: MsgUserNotFound, Field: FieldEmail}
	case errors.Is(err, common.ErrInvalidPassword):
		return ErrorResult{Message: MsgIncorrectPassword, Field: FieldPassword}
	}

	if err != nil && err.Error() != "" {
		return ErrorResult{Message: err.Error()}
	}
	return ErrorResult{Message: MsgLoginFailed}
}
