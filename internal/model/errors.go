package model

import "errors"

// Common errors used across the application
var (
	// Input validation errors
	ErrMissingCredentials = errors.New("username and password required")
	ErrUsernameTooShort   = errors.New("username must be at least 3 characters")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")

	// Account errors
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")
	ErrWrongPassword  = errors.New("incorrect password")
)
