package die

import "errors"

var (
	// ErrInvalidThreshold is returned for a plane threshold outside (0, 1).
	ErrInvalidThreshold = errors.New("threshold must be in (0, 1)")

	// ErrInvalidSize is returned for a non-positive edge size.
	ErrInvalidSize = errors.New("size must be positive")
)
