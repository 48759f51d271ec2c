package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	// ErrTokenRevoked is returned for a refresh token that was logged out.
	ErrTokenRevoked = errors.New("token revoked")
)
