package auth

import "errors"

// Common authentication service errors. These stay internal to the server:
// the HTTP layer collapses all of them into one indistinguishable 401.
var (
	// ErrInvalidToken indicates the token is malformed or its signature
	// doesn't match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingSubject indicates the token carries no subject claim.
	ErrMissingSubject = errors.New("authentication token has no subject")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrBadCredentials indicates a login attempt with an unknown username
	// or a wrong password.
	ErrBadCredentials = errors.New("invalid username or password")
)
