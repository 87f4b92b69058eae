package service

import "errors"

// Error taxonomy surfaced to the transport layer: validation and conflict
// map to 400, not-found to 404, anything else to 500. All checks run
// before any mutation; multi-record mutations are applied transactionally
// by the repositories.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("invalid input")
	ErrConflict   = errors.New("conflict")
)
