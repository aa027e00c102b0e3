/*
Package user contains the user account model and its PostgreSQL-backed store.

A User row is created at signup and is read-only afterwards from the social
core's perspective; the password hash never leaves the store layer except to
the credential-verification path in the auth handlers.
*/
package user

import "time"

// User represents a registered account.
type User struct {
	// ID is the immutable internal identifier for the account.
	ID int64

	// Email uniquely identifies the account. Matching is exact and case-sensitive.
	Email string

	// PasswordHash is the bcrypt hash of the account password. It must never
	// be included in any response payload.
	PasswordHash string

	// FullName is the display name provided at signup.
	FullName string

	// CreatedAt is the account creation time.
	CreatedAt time.Time
}

// Profile is the public representation of a user, safe to return to clients.
// Credential fields are deliberately absent.
type Profile struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// Profile returns the public representation of the user.
func (u User) Profile() Profile {
	return Profile{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
	}
}
