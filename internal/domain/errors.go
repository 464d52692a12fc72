package domain

import "errors"

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrEmptyInput    = errors.New("empty input")
	ErrInvalidResult = errors.New("invalid translation result")
	ErrNoImage       = errors.New("no image generated")
)
