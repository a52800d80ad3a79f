// Package common defines shared helpers and sentinel errors used across
// TaskKeeper stores and the CLI. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Registration errors.
	ErrEmailAlreadyRegistered = errors.New("Email already registered")

	// Login errors. Kept distinct so form handlers can tag the
	// offending field.
	ErrUserNotFound    = errors.New("User with this email does not exist")
	ErrInvalidPassword = errors.New("Invalid password")
)
