package geometry

import "errors"

var (
	// ErrMalformedMesh is returned when a mesh lacks positions or indices or
	// breaks the triangle list invariants.
	ErrMalformedMesh = errors.New("malformed mesh")

	// ErrSubdivisionLimit is returned for an iteration count outside [0, MaxSubdivisions].
	ErrSubdivisionLimit = errors.New("subdivision iterations out of range")

	// ErrDegenerateTriangle is returned when a cut triangle has no intersection
	// vertex to close its fan.
	ErrDegenerateTriangle = errors.New("degenerate cut triangle")

	// ErrOpenBoundary is returned when a cap ring has fewer than three vertices.
	ErrOpenBoundary = errors.New("boundary ring too small")

	// ErrUVMismatch is returned when a UV array does not match the vertex count.
	ErrUVMismatch = errors.New("uv count does not match vertex count")
)
