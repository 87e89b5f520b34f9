package service

import "errors"

// Errors returned by the service. Callers match them with errors.Is;
// the wrapped detail is for logs only.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrDuplicateLogin       = errors.New("username already exists")
	ErrAuthenticationFailed = errors.New("invalid credentials")
	ErrNotFound             = errors.New("record not found")
	ErrStoreFailure         = errors.New("store failure")
)
