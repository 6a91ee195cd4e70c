package utils

import "errors"

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrTripNotFound       = errors.New("trip not found")
	ErrStopNotFound       = errors.New("stop not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrDatabaseError      = errors.New("database error")
)
