package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrLoginFailed  = errors.New("invalid username or password")
	ErrInvalidPage  = errors.New("invalid page")
)
