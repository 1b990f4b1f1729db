package auth

import "errors"

// ErrMissingFields is returned when registration input has empty fields.
var ErrMissingFields = errors.New("all fields are required")

// ErrInvalidCredentials is returned for any login failure. It deliberately
// does not distinguish "no such user" from "wrong password".
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrGenToken is returned when we cannot create a JWT.
var ErrGenToken = errors.New("failed to generate token")

// ErrInvalidTokenMissingUserID is returned when a verified token lacks the user_id claim.
var ErrInvalidTokenMissingUserID = errors.New("invalid token: missing user_id claim")

// ErrInvalidTokenMissingNombre is returned when a verified token lacks the nombre claim.
var ErrInvalidTokenMissingNombre = errors.New("invalid token: missing nombre claim")

// ErrInvalidToken is returned when a token fails signature or expiry checks.
var ErrInvalidToken = errors.New("invalid or expired token")
