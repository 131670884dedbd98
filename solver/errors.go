package solver

import "errors"

var (
	// ErrOrderTooSmall is returned for systems with fewer than MinimumEvolvingSize unknowns.
	ErrOrderTooSmall = errors.New("solver: order below minimum evolving size")

	// ErrAxis is returned for an axis outside 0..2.
	ErrAxis = errors.New("solver: axis out of range")

	// ErrNoSolution is returned by Solution before the system of that order was solved.
	ErrNoSolution = errors.New("solver: no solution cached for order")

	// ErrIndex is returned by Solution for an index outside the system.
	ErrIndex = errors.New("solver: index out of range")
)
