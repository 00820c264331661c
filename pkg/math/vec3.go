// Package math provides float32 vector helpers for mesh generation.
//
// Vectors are mgl32 types; this package only adds the operations mgl32 lacks
// or that need float32-in, float32-out wrappers around the standard library.
package math

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		(a[0] + b[0]) / 2,
		(a[1] + b[1]) / 2,
		(a[2] + b[2]) / 2,
	}
}

// ProjectToUnit divides v by its Euclidean length.
// A zero vector is returned unchanged.
func ProjectToUnit(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return mgl32.Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// Angle returns the unsigned angle between a and b in radians, in [0, π].
// Returns 0 if either vector has zero length.
func Angle(a, b mgl32.Vec3) float32 {
	la, lb := a.Len(), b.Len()
	if la == 0 || lb == 0 {
		return 0
	}
	// Rounding can push the cosine just outside [-1, 1].
	c := mgl32.Clamp(a.Dot(b)/(la*lb), -1, 1)
	return Acos(c)
}

// MaxAbs returns the largest absolute component of v.
func MaxAbs(v mgl32.Vec3) float32 {
	m := Abs(v[0])
	if y := Abs(v[1]); y > m {
		m = y
	}
	if z := Abs(v[2]); z > m {
		m = z
	}
	return m
}

// Lerp returns a + (b-a)*t.
func Lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Abs returns |x|.
func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}
