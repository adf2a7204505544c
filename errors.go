package keccak

import "errors"

var (
	// ErrInvalidParameter is returned for an unsupported security level or a
	// non-positive output length. Retrying with valid parameters succeeds.
	ErrInvalidParameter = errors.New("keccak: invalid parameter")

	// ErrUsage is returned when an instance is driven out of order: absorbing
	// after Finalize, finalizing twice, or reading output before Finalize.
	// The instance should be discarded.
	ErrUsage = errors.New("keccak: usage error")
)
