package revolve

import (
	"errors"
	"math"

	. "github.com/kmillard/revolve/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// Profile describes a curve of revolution in the 2D half-plane containing
// the rotation axis: a radius and a height for each sample. A single-element
// Radius is broadcast to every ring. For each closed end, Height carries one
// extra sample beyond Radius; the extra samples place the apexes.
type Profile struct {
	Radius, Height []float64
}

func (this Profile) check(closed Closed) error {
	if len(this.Radius) < 1 {
		return errors.New("Profile radius cannot be empty!")
	}
	if len(this.Height) < 1+closed.count() {
		return errors.New("Profile height must have at least one sample per ring and closed end!")
	}
	if len(this.Radius) != 1 && len(this.Radius) != len(this.Height)-closed.count() {
		return errors.New("Profile radius count must be 1 or the height count minus the number of closed ends!")
	}

	return nil
}

func radiusAt(radius []float64, i int) float64 {
	if len(radius) == 1 {
		return radius[0]
	}

	return radius[i]
}

// Construct a surface of revolution from a profile
//
// A fixed orthonormal basis orthogonal to the axis is built once; every
// non-apex height sample contributes a ring of resolution vertices at
// base + r*(x*cos a - y*sin a) + h*axis. A closed end contributes a single
// apex at base + h*axis instead of a ring. The topology is toroidal when
// periodic, otherwise a cylinder capped per the closed flags.
//
// **params**
// + base point of the rotation axis
// + direction of the rotation axis, normalized internally
// + radius and height curves
// + number of vertices around the axis, at least 3
// + which ends to cap; a capped end consumes one extra height sample
// + whether to wrap the profile into a torus; excludes closed ends
//
// **returns**
// + the mesh
func SurfaceOfRevolution(base, axis *vec3.T, profile Profile, resolution int, closed Closed, periodic bool) (*Mesh, error) {
	if resolution < 3 {
		return nil, errors.New("Resolution must be at least 3!")
	}
	if periodic && (closed.Lo || closed.Hi) {
		return nil, errors.New("A periodic surface cannot have closed ends!")
	}
	if err := profile.check(closed); err != nil {
		return nil, err
	}

	z := *axis
	if z.Length() < Epsilon {
		return nil, errors.New("Axis must have nonzero length!")
	}
	z.Normalize()
	x := UnitOrthogonal(&z)
	y := vec3.Cross(&z, &x)
	y.Normalize()

	var topo *Topology
	var err error
	if periodic {
		topo, err = TorusTopology(len(profile.Height), resolution)
	} else {
		topo, err = CylinderTopology(len(profile.Height)-1, resolution, closed)
	}
	if err != nil {
		return nil, err
	}

	lo := 0
	if closed.Lo {
		lo = 1
	}
	rings := len(profile.Height) - closed.count()

	points := make(Geometry, 0, topo.NumVertices())
	if closed.Lo {
		points = append(points, axisPoint(base, &z, profile.Height[0]))
	}
	for ri := 0; ri < rings; ri++ {
		r := radiusAt(profile.Radius, ri)
		h := profile.Height[lo+ri]
		for k := 0; k < resolution; k++ {
			a := 2 * math.Pi * float64(k) / float64(resolution)
			pt := x.Scaled(r * math.Cos(a))
			ys := y.Scaled(r * math.Sin(a))
			zs := z.Scaled(h)
			pt.Sub(&ys).Add(&zs).Add(base)
			points = append(points, pt)
		}
	}
	if closed.Hi {
		points = append(points, axisPoint(base, &z, profile.Height[len(profile.Height)-1]))
	}

	return &Mesh{topo, points}, nil
}

func axisPoint(base, axis *vec3.T, h float64) vec3.T {
	pt := axis.Scaled(h)
	pt.Add(base)

	return pt
}
