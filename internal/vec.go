package internal

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

const (
	// Minimum distance between two distinguishable geometric entities
	Tolerance = 1e-6

	// Minimum distinguishable difference between two floats
	Epsilon = 1e-10
)

// Find a unit vector orthogonal to a nonzero vector
//
// The same input always yields the same output: the vector is crossed with
// the coordinate axis of its smallest-magnitude component and normalized.
//
// **params**
// + vector to be orthogonal to, assumed nonzero
//
// **returns**
// + a unit vector orthogonal to the input
func UnitOrthogonal(v *vec3.T) vec3.T {
	ax, ay, az := math.Abs(v[0]), math.Abs(v[1]), math.Abs(v[2])

	var axis vec3.T
	switch {
	case ax <= ay && ax <= az:
		axis = vec3.UnitX
	case ay <= az:
		axis = vec3.UnitY
	default:
		axis = vec3.UnitZ
	}

	u := vec3.Cross(v, &axis)
	u.Normalize()

	return u
}

// Normalize a vector, also reporting its original magnitude
//
// **params**
// + vector to normalize
//
// **returns**
// + the magnitude of the vector
// + the unit vector, or the zero vector if the magnitude is below Epsilon
func MagnitudeAndNormalized(v *vec3.T) (float64, vec3.T) {
	l := v.Length()
	if l < Epsilon {
		return 0, vec3.Zero
	}

	return l, v.Scaled(1 / l)
}
