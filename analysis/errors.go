package analysis

import "errors"

var (
	// ErrNoSnakes is returned when a measurement needs at least one snake.
	ErrNoSnakes = errors.New("analysis: no snakes")

	// ErrBinning indicates a non-positive bin count or radius.
	ErrBinning = errors.New("analysis: invalid binning")

	// ErrCoarseGraining indicates a non-positive coarse-graining step.
	ErrCoarseGraining = errors.New("analysis: coarse graining must be > 0")
)
