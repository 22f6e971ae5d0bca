package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrNoSuchAccount      = errors.New("no such account")
	ErrInvalidUserType    = errors.New("invalid user type")
	ErrAuthDisabled       = errors.New("authentication is not configured")
)
