package auth

import "errors"

var (
	ErrUserNotFound      = errors.New("auth: user not found")
	ErrBadCredentials    = errors.New("auth: bad credentials")
	ErrUserAlreadyExists = errors.New("auth: user already exists")
)
