// Package common defines shared sentinel errors and small helpers used
// across credkeeper packages. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrStorage    = errors.New("storage failure")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)
