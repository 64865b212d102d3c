package services

import "errors"

// Общие ошибки сервисного слоя, маппятся на HTTP в handlers.
var (
	ErrNotFound         = errors.New("requested resource not found")
	ErrValidationFailed = errors.New("validation failed")

	ErrNotAuthenticated = errors.New("authentication required")
	ErrForbidden        = errors.New("operation not allowed for the current role")

	ErrLoginFailed = errors.New("login failed")
)
