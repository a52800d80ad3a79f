package validation

// minPasswordLength is the registration strength policy: minimum length only.
const minPasswordLength = 8

// ValidatePasswordLogin checks the password for the login form: presence
// only, since the stored password decides correctness.
func ValidatePasswordLogin(password string) string {
	if password == "" {
		return MsgPasswordRequired
	}
	return ""
}

// ValidatePasswordStrength checks the password for the registration form.
func ValidatePasswordStrength(password string) string {
	if password == "" {
		return MsgPasswordRequired
	}
	if len(password) < minPasswordLength {
		return MsgPasswordTooShort
	}
	return ""
}

// ValidatePasswordConfirmation requires the confirmation to match exactly.
func ValidatePasswordConfirmation(password, confirm string) string {
	if password != confirm {
		return MsgPasswordsDiffer
	}
	return ""
}
