package entity

import "errors"

// Expected failure modes surfaced to callers. Handlers map these to HTTP
// statuses with errors.Is; anything else is an internal failure and must
// not leak storage error text to clients.
var (
	ErrValidation       = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidState     = errors.New("operation not allowed in current status")
	ErrConflict         = errors.New("concurrent modification")
)
