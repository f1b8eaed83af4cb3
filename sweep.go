package revolve

import (
	"errors"
	"math"

	. "github.com/kmillard/revolve/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// Frame is an orthonormal basis attached to a point on a space curve, used
// to orient a swept cross-section: the curve tangent plus two axes spanning
// the plane of the cross-section.
type Frame struct {
	Tangent, X, Y vec3.T
}

// Compute a twist-minimizing frame and accumulated roll angle for every ring
// of a swept tube
//
// Tangents, unless supplied, are finite differences of consecutive curve
// points: interior samples take the normalized sum of their two adjacent
// segment tangents, open endpoints take their single segment tangent, and a
// closed end has no ring and therefore no frame. Each frame's x axis is the
// deterministic unit orthogonal of its tangent, with y = x cross tangent.
//
// The roll angle is a sequential scan: each step measures the signed
// rotation between consecutive frames' x axes via atan2 of the projections
// onto the next frame, and adds it to the running total. Placement must use
// the accumulated relative rotation rather than each frame's absolute
// orientation, or the tube twists where UnitOrthogonal changes branch.
//
// **params**
// + the curve points, at least 2
// + explicit tangents, one per ring, or nil to compute from the curve
// + which ends are capped
//
// **returns**
// + one frame per ring
// + the accumulated roll angle per ring, starting at 0
func Frames(curve, tangent []vec3.T, closed Closed) ([]Frame, []float64, error) {
	if len(curve) < 2 {
		return nil, nil, errors.New("Curve must have at least 2 points!")
	}

	var tangents []vec3.T
	if tangent != nil {
		if len(tangent) != len(curve)-closed.count() {
			return nil, nil, errors.New("Tangent count must equal the curve point count minus the number of closed ends!")
		}

		tangents = make([]vec3.T, len(tangent))
		for i := range tangent {
			t := tangent[i]
			if t.Length() < Epsilon {
				return nil, nil, errors.New("Tangent must have nonzero length!")
			}
			t.Normalize()
			tangents[i] = t
		}
	} else {
		var err error
		tangents, err = curveTangents(curve, closed)
		if err != nil {
			return nil, nil, err
		}
	}

	frames := make([]Frame, len(tangents))
	for i := range tangents {
		t := tangents[i]
		x := UnitOrthogonal(&t)
		y := vec3.Cross(&x, &t)
		frames[i] = Frame{t, x, y}
	}

	roll := make([]float64, len(frames))
	for i := 1; i < len(frames); i++ {
		prev, cur := &frames[i-1], &frames[i]
		roll[i] = roll[i-1] + math.Atan2(
			vec3.Dot(&prev.X, &cur.Y),
			vec3.Dot(&prev.X, &cur.X))
	}

	return frames, roll, nil
}

// curveTangents smooths per-segment tangents into per-ring tangents.
// Each interior tangent bisects the angle between its adjacent segments.
func curveTangents(curve []vec3.T, closed Closed) ([]vec3.T, error) {
	segs := make([]vec3.T, len(curve)-1)
	for i := range segs {
		d := vec3.Sub(&curve[i+1], &curve[i])
		if d.Length() < Epsilon {
			return nil, errors.New("Curve has a zero-length segment!")
		}
		d.Normalize()
		segs[i] = d
	}

	tangents := make([]vec3.T, 0, len(curve)-closed.count())
	if !closed.Lo {
		tangents = append(tangents, segs[0])
	}
	for i := 0; i+1 < len(segs); i++ {
		t := vec3.Add(&segs[i], &segs[i+1])
		if t.Length() < Epsilon {
			return nil, errors.New("Curve reverses direction, tangent is undefined!")
		}
		t.Normalize()
		tangents = append(tangents, t)
	}
	if !closed.Hi {
		tangents = append(tangents, segs[len(segs)-1])
	}

	return tangents, nil
}

// Construct a surface by thickening a space curve with a circular
// cross-section of possibly varying radius
//
// Every non-apex curve point contributes a ring of resolution vertices in
// its frame's cross-section plane, rotated by that frame's accumulated roll;
// a closed end contributes the literal first or last curve point as its
// apex. The topology is toroidal when periodic, otherwise a cylinder capped
// per the closed flags.
//
// **params**
// + the curve points, at least 2
// + ring radii; a single element is broadcast to every ring
// + number of vertices around the curve, at least 3
// + explicit tangents, one per ring, or nil to compute from the curve
// + which ends to cap; a capped end consumes one extra curve point
// + whether to wrap the sweep into a torus; excludes closed ends
//
// **returns**
// + the mesh
func RevolveAroundCurve(curve []vec3.T, radius []float64, resolution int, tangent []vec3.T, closed Closed, periodic bool) (*Mesh, error) {
	if resolution < 3 {
		return nil, errors.New("Resolution must be at least 3!")
	}
	if periodic && (closed.Lo || closed.Hi) {
		return nil, errors.New("A periodic surface cannot have closed ends!")
	}

	n := len(curve)
	rings := n - closed.count()
	if len(radius) != 1 && len(radius) != rings {
		return nil, errors.New("Radius count must be 1 or the curve point count minus the number of closed ends!")
	}

	frames, roll, err := Frames(curve, tangent, closed)
	if err != nil {
		return nil, err
	}

	var topo *Topology
	if periodic {
		topo, err = TorusTopology(n, resolution)
	} else {
		topo, err = CylinderTopology(n-1, resolution, closed)
	}
	if err != nil {
		return nil, err
	}

	lo := 0
	if closed.Lo {
		lo = 1
	}

	points := make(Geometry, 0, topo.NumVertices())
	if closed.Lo {
		points = append(points, curve[0])
	}
	for k := range frames {
		f := &frames[k]
		r := radiusAt(radius, k)
		for j := 0; j < resolution; j++ {
			a := 2*math.Pi*float64(j)/float64(resolution) + roll[k]
			pt := f.X.Scaled(r * math.Cos(a))
			ys := f.Y.Scaled(r * math.Sin(a))
			pt.Add(&ys).Add(&curve[lo+k])
			points = append(points, pt)
		}
	}
	if closed.Hi {
		points = append(points, curve[n-1])
	}

	return &Mesh{topo, points}, nil
}
