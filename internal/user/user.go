package user

import (
	"errors"
	"time"
)

// User is a registered customer. The email doubles as the login username and
// is the principal string stamped on account ownership.
type User struct {
	ID           string
	Name         string
	Email        string
	PhoneNumber  string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var (
	// ErrNotFound signals that no user exists for the given id or email.
	ErrNotFound = errors.New("user not found")

	// ErrForbidden signals an attempt to access another user's profile.
	ErrForbidden = errors.New("user not accessible")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures do not reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrHasAccounts blocks deletion while the user still owns accounts.
	ErrHasAccounts = errors.New("user has associated accounts")

	ErrEmailTaken      = errors.New("email already registered")
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrInvalidPassword = errors.New("invalid password")
)
