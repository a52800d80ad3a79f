// Package validation contains the pure form validators for login and
// registration, plus the mapping from store errors to user-facing,
// field-tagged messages.
package validation

// Field tags the form input a validation failure belongs to. Empty means
// the failure is not attributable to a single field.
type Field string

const (
	FieldNone            Field = ""
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// User-facing messages. The stores never produce these directly; the
// validators and error handlers do.
const (
	MsgEmailRequired         = "Email is required"
	MsgEmailInvalid          = "Please enter a valid email address"
	MsgEmailTooLong          = "Email address is too long"
	MsgEmailLocalPartTooLong = "Email username part is too long"
	MsgEmailAlreadyInUse     = "This email is already registered"

	MsgPasswordRequired = "Password is required"
	MsgPasswordTooShort = "Password must be at least 8 characters"
	MsgPasswordsDiffer  = "Passwords do not match"

	MsgFillAllFields      = "Please fill in all fields"
	MsgUserNotFound       = "User with this email does not exist"
	MsgIncorrectPassword  = "Incorrect password"
	MsgLoginFailed        = "Login failed. Please try again"
	MsgRegistrationFailed = "Registration failed. Please try again"
)

// Result is the outcome of a form validation pipeline. The first failing
// check wins and tags its field.
type Result struct {
	IsValid bool
	Error   string
	Field   Field
}

// ErrorResult is a display-ready mapping of a store error.
type ErrorResult struct {
	Message string
	Field   Field
}

func valid() Result {
	return Result{IsValid: true}
}

func invalid(message string, field Field) Result {
	return Result{Error: message, Field: field}
}
