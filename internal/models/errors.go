package models

import "errors"

var (
	ErrInvalidQuery           = errors.New("invalid query")
	ErrInvalidRequest         = errors.New("invalid request")
	ErrInvalidReview          = errors.New("invalid review")
	ErrInvalidRating          = errors.New("invalid rating")
	ErrInvalidFlag            = errors.New("invalid interaction flag")
	ErrInvalidCollection      = errors.New("invalid collection kind")
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
	ErrNotFound               = errors.New("not found")

	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")

	ErrInvalidMessage    = errors.New("invalid message")
	ErrCompletionTimeout = errors.New("completion timed out")
	ErrCompletionFailed  = errors.New("completion failed")
)
