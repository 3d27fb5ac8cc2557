package services

import "errors"

var (
	// ErrInvalidInput indicates a missing or empty required field.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound indicates no user matches the given email or id.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials indicates a password mismatch on login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
