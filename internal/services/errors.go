package services

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrConflict           = errors.New("uniqueness conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is not active")
	ErrExternalService    = errors.New("external service error")
)
