package util

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrOutOfRange   = errors.New("index out of range")
	ErrForbidden    = errors.New("permission denied")
	ErrConflict     = errors.New("conflict")

	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
