package domain

import "errors"

// Error kinds. Services wrap one of these into their specific errors so the HTTP
// boundary can map every failure to a status code in a single place.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)
