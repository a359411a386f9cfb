package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPin         = errors.New("invalid pin code")
	ErrConflict           = errors.New("conflicting state")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrValidation         = errors.New("invalid input")
)
