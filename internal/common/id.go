package common

import "github.com/google/uuid"

// NewID returns a time-ordered unique identifier. UUIDv7 embeds a
// millisecond timestamp, so identifiers created later sort later; if the
// system entropy source fails we fall back to a random v4.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
