package domain

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so a caller cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailTaken      = errors.New("an account with this email already exists")
	ErrAccountNotFound = errors.New("account not found")
	ErrRoleMismatch    = errors.New("account is registered under a different role")
	ErrTokenInvalid    = errors.New("invalid or expired token")
	ErrTooManyAttempts = errors.New("too many login attempts, try again later")
)
