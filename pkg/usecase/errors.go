package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the use case layer
var (
	// ErrInvalidArgument is returned when a payload fails shape constraints.
	// It is surfaced immediately and never retried.
	ErrInvalidArgument = goerr.New("invalid argument")
)
