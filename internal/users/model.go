package users

import "time"

// User is a registered account. Fields are never mutated after creation.
// Passwords are kept in plaintext: this is a simulated, local-only login,
// not real authentication.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is the projection of a User that identifies the active login.
// It never carries the password. A nil *Session means logged out.
type Session struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
}
