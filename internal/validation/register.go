package validation

import (
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/users"
)

// ValidateRegistrationForm runs the registration pipeline in order: all
// fields present (untagged), email format, email availability, password
// strength, confirmation match. The first failing check wins.
func ValidateRegistrationForm(email, password, confirmPassword string, registered []users.User) Result {
	if email == "" || password == "" || confirmPassword == "" {
		return invalid(MsgFillAllFields, FieldNone)
	}
	if msg := ValidateEmail(email); msg != "" {
		return invalid(msg, FieldEmail)
	}
	if msg := CheckEmailAvailability(email, registered); msg != "" {
		return invalid(msg, FieldEmail)
	}
	if msg := ValidatePasswordStrength(password); msg != "" {
		return invalid(msg, FieldPassword)
	}
	if msg := ValidatePasswordConfirmation(password, confirmPassword); msg != "" {
		return invalid(msg, FieldConfirmPassword)
	}
	return valid()
}

// HandleRegistrationError maps a registration failure onto a display
// message. A message mentioning the duplicate email is special-cased onto
// the email field; everything else falls back untagged.
func HandleRegistrationError(err error) ErrorResult {
	if err != nil && strings.Contains(err.Error(), common.ErrEmailAlreadyRegistered.Error()) {
		return ErrorResult{Message: MsgEmailAlreadyInUse, Field: FieldEmail}
	}

	if err != nil && err.Error() != "" {
		return ErrorResult{Message: err.Error()}
	}
	return ErrorResult{Message: MsgRegistrationFailed}
}
