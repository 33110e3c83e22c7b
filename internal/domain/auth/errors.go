package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	// ErrRegistrationClosed is returned once an admin exists and the caller
	// is not signed in as one.
	ErrRegistrationClosed = errors.New("registration requires an admin account")
)
