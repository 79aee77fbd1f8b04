package domain

import "errors"

// Sentinel errors returned by every repository implementation.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicate      = errors.New("duplicate record")
	ErrCheckViolation = errors.New("check constraint violated")
)
