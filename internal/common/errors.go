// Package common defines shared constants and sentinel errors used across
// BirthdayBook components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Auth-specific errors.
	ErrorUnauthorized      = errors.New("unauthorized")
	ErrorUserAlreadyExists = errors.New("user already exists")
	ErrorNoSession         = errors.New("no active session")
	ErrInvalidToken        = errors.New("invalid token")
)
