package game

import "errors"

var (
	ErrInvalidTimeDelta      = errors.New("elapsed time must not be negative")
	ErrNoEligibleDestination = errors.New("no eligible destination")
	ErrNoActiveEvent         = errors.New("no active event")
	ErrUnknownAction         = errors.New("action not available")
)
