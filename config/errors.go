package config

import "errors"

var (
	// ErrUnknownParameter is returned by Assign for a key that names no parameter.
	ErrUnknownParameter = errors.New("config: unknown parameter")

	// ErrInvalidValue is returned when a value cannot be parsed for its key.
	ErrInvalidValue = errors.New("config: invalid value")

	// ErrInvalidParameter is returned by Validate for an out-of-range parameter.
	ErrInvalidParameter = errors.New("config: parameter out of range")
)
