package domain

import "errors"

var (
	ErrNoCards       = errors.New("cards must contain at least one entry")
	ErrEmailRequired = errors.New("email is required")
	ErrInvalidN      = errors.New("n must be between 1 and 10")
	ErrNExceedsDeck  = errors.New("n exceeds number of cards in deck")
	ErrDeckNotFound  = errors.New("deck not found")
	ErrUpstream      = errors.New("upstream failure")
	ErrTransport     = errors.New("upstream unreachable")
)
