package common

import "errors"

// Sentinel errors; match them with errors.Is.
var (
	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Pagination.
	ErrInvalidPage = errors.New("invalid page")

	// Session token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrRevokedToken = errors.New("token revoked")
)
