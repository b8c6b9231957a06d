package collision

import (
	"errors"
)

var (
	// ErrInvalidBits is returned when Options.Bits is outside 1..64.
	ErrInvalidBits = errors.New("bits must be between 1 and 64")

	// ErrInvalidRuns is returned when Options.Runs is below 1.
	ErrInvalidRuns = errors.New("runs must be at least 1")
)
