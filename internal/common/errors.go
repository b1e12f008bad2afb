// Package common defines shared constants and sentinel errors used across
// the journal service layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Registration.
	ErrorAlreadyExists = errors.New("already exists")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrNoRefreshToken = errors.New("no refresh token provided")
	ErrNoSuchSession  = errors.New("no such session")

	// Password reset errors.
	ErrResetLinkInvalid = errors.New("reset link invalid or expired")
)
