package candidate

import "errors"

var (
	// ErrNilEnv is returned when the generator has no environment or sampler.
	ErrNilEnv = errors.New("candidate: nil environment")

	// ErrDirection indicates a direction outside the image dimensionality.
	ErrDirection = errors.New("candidate: direction out of range")
)
