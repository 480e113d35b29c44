// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no credential record exists for an email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when registering an email that is already taken.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrInvalidCode is returned when a verification code does not match the stored one.
	ErrInvalidCode = errors.New("invalid verification code")

	// ErrNotVerified is returned when an unverified account attempts to log in.
	ErrNotVerified = errors.New("account not verified")

	// ErrInvalidCredentials is returned when the password does not match the stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
