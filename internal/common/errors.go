// Package common defines shared constants and sentinel errors used across
// plantcal components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors.
	ErrorValidation   = errors.New("validation error")
	ErrorInvalidEmail = errors.New("invalid email address")
	ErrorNoSelection  = errors.New("no crop and country selected")

	// Registration gate errors.
	ErrorAlreadyRegistered = errors.New("a profile is already registered")
	ErrorNotRegistered     = errors.New("no registered profile")

	// Reminder lifecycle errors.
	ErrorDeleteNotAllowed   = errors.New("deletion is not allowed")
	ErrorDeleteNotConfirmed = errors.New("deletion not confirmed")
)
