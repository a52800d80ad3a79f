package validation

import (
	"regexp"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/users"
)

// emailPattern is deliberately loose: one @, no whitespace, and a dotted
// domain. RFC-complete parsing is not a goal for a local app.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	maxEmailLength     = 254
	maxLocalPartLength = 64
)

// ValidateEmail checks the shape of an email address. Input is trimmed
// first. Returns an empty string when valid, otherwise the message to show.
func ValidateEmail(email string) string {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return MsgEmailRequired
	}
	if !emailPattern.MatchString(trimmed) {
		return MsgEmailInvalid
	}
	if len(trimmed) > maxEmailLength {
		return MsgEmailTooLong
	}
	localPart := strings.SplitN(trimmed, "@", 2)[0]
	if len(localPart) > maxLocalPartLength {
		return MsgEmailLocalPartTooLong
	}
	return ""
}

// CheckEmailAvailability reports whether the email is already taken,
// comparing case-insensitively. An empty email or an empty user list
// short-circuits to available. Note this is intentionally looser than the
// user store's own duplicate check, which matches case-sensitively.
func CheckEmailAvailability(email string, registered []users.User) string {
	if email == "" || len(registered) == 0 {
		return ""
	}
	for _, u := range registered {
		if strings.EqualFold(u.Email, email) {
			return MsgEmailAlreadyInUse
		}
	}
	return ""
}
