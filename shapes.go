package revolve

import (
	"errors"
	"math"

	. "github.com/kmillard/revolve/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// Construct an open cylinder mesh between two points
//
// The radius may be constant (a single element) or a piecewise-linear
// profile with one entry per ring. When _nz is nil the number of segments is
// taken from the radius profile, or defaults to 1 for a constant radius.
//
// **params**
// + first endpoint
// + second endpoint
// + ring radii; a single element is broadcast to every ring, otherwise one per ring
// + number of vertices around the axis, at least 3
// + number of segments along the axis, or nil to derive from the radius
//
// **returns**
// + the mesh, open at both ends
func OpenCylinderMesh(x0, x1 *vec3.T, radius []float64, na int, _nz *int) (*Mesh, error) {
	if na < 3 {
		return nil, errors.New("Cylinder must have at least 3 segments around its circumference!")
	}

	var nz int
	if _nz == nil {
		if len(radius) == 0 {
			return nil, errors.New("Radius cannot be empty!")
		}
		if len(radius) == 1 {
			nz = 1
		} else {
			nz = len(radius) - 1
		}
	} else {
		nz = *_nz
		if nz < 1 {
			return nil, errors.New("Cylinder must have at least 1 segment along its axis!")
		}
		if len(radius) != 1 && len(radius) != nz+1 {
			return nil, errors.New("Radius count must be 1 or the ring count nz+1!")
		}
	}

	d := vec3.Sub(x1, x0)
	length, z := MagnitudeAndNormalized(&d)
	if length < Epsilon {
		return nil, errors.New("Cylinder endpoints must be distinct!")
	}
	x := UnitOrthogonal(&z)
	y := vec3.Cross(&z, &x)

	topo, err := CylinderTopology(nz, na, OpenEnds())
	if err != nil {
		return nil, err
	}

	points := make(Geometry, 0, topo.NumVertices())
	for j := 0; j <= nz; j++ {
		r := radiusAt(radius, j)
		axial := d.Scaled(float64(j) / float64(nz))
		for i := 0; i < na; i++ {
			a := 2 * math.Pi * float64(i) / float64(na)
			pt := x.Scaled(r * math.Cos(a))
			ys := y.Scaled(r * math.Sin(a))
			pt.Sub(&ys).Add(&axial).Add(x0)
			points = append(points, pt)
		}
	}

	return &Mesh{topo, points}, nil
}

// Construct a capsule mesh: a cylinder between two points with both ends
// rounded by quarter-circle caps
//
// The cap profile samples a quarter circle of the given radius, mirrored
// about the cylinder body, and the whole capsule is a single surface of
// revolution closed at both ends. The two pole vertices sit exactly at
// x0 - radius*axis and x1 + radius*axis.
//
// **params**
// + first endpoint
// + second endpoint
// + radius of the cylinder and its caps
// + number of vertices around the axis, at least 3
//
// **returns**
// + the mesh
func CapsuleMesh(x0, x1 *vec3.T, radius float64, n int) (*Mesh, error) {
	if n < 3 {
		return nil, errors.New("Capsule resolution must be at least 3!")
	}

	d := vec3.Sub(x1, x0)
	length, axis := MagnitudeAndNormalized(&d)
	if length < Epsilon {
		return nil, errors.New("Capsule endpoints must be distinct!")
	}

	// quarter circle from the equator (theta=0) to the pole (theta=pi/2)
	m := (n + 1) / 2
	capR := make([]float64, m-1)
	capH := make([]float64, m)
	for i := 0; i < m; i++ {
		theta := math.Pi / 2 * float64(i) / float64(m-1)
		if i < m-1 {
			capR[i] = radius * math.Cos(theta)
		}
		capH[i] = radius * math.Sin(theta)
	}

	r := make([]float64, 0, 2*(m-1))
	h := make([]float64, 0, 2*m)
	for i := m - 1; i >= 0; i-- {
		if i < m-1 {
			r = append(r, capR[i])
		}
		h = append(h, -capH[i])
	}
	for i := 0; i < m; i++ {
		if i < m-1 {
			r = append(r, capR[i])
		}
		h = append(h, capH[i]+length)
	}

	return SurfaceOfRevolution(x0, &axis, Profile{r, h}, n, ClosedBoth(), false)
}
