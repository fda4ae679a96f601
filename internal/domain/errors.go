package domain

import "errors"

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrScreenNotFound = errors.New("screen not found")

	ErrMissingFields      = errors.New("missing fields")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("password mismatch")
	ErrPasswordTooShort   = errors.New("password too short")

	ErrSubmitInFlight = errors.New("submit already in progress")
)
