package authactor

import "errors"

var (
	ErrInvalidCredentials = errors.New("authactor: invalid credentials")
	ErrInvalidToken       = errors.New("authactor: invalid token")
	ErrUsernameTaken      = errors.New("authactor: username already registered")
)
