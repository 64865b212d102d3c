package models

import "errors"

// Payload validation errors, rejected at the boundary before any request
// is sent upstream.
var (
	ErrFullNameRequired = errors.New("player full name is required")
	ErrInvalidBirthYear = errors.New("birth year is out of range")
	ErrPlayerIDRequired = errors.New("player reference is required")
	ErrMonthRequired    = errors.New("subscription month is required")
	ErrSizeRequired     = errors.New("uniform size is required")
	ErrNameRequired     = errors.New("name is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrInvalidRole      = errors.New("role must be ADMIN or COACH")
)
