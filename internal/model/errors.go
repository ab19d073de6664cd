package model

import "errors"

// Sentinel errors shared by the store and the HTTP layer. Anything not
// matching one of these is treated as a store failure.
var (
	ErrConstraintViolation = errors.New("constraint violation")
	ErrNotFound            = errors.New("not found")
	ErrAuthRequired        = errors.New("authentication required")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)
