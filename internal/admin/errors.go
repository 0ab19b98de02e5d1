package admin

import "errors"

var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)
