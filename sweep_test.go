package revolve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/kmillard/revolve"
)

func line(x0, x1 vec3.T, n int) []vec3.T {
	pts := make([]vec3.T, n)
	for i := range pts {
		s := float64(i) / float64(n-1)
		d := vec3.Sub(&x1, &x0)
		d.Scale(s).Add(&x0)
		pts[i] = d
	}

	return pts
}

func helix(radius, climb float64, turns float64, n int) []vec3.T {
	pts := make([]vec3.T, n)
	for i := range pts {
		a := 2 * math.Pi * turns * float64(i) / float64(n-1)
		pts[i] = vec3.T{radius * math.Cos(a), radius * math.Sin(a), climb * a / (2 * math.Pi)}
	}

	return pts
}

func TestFrames_StraightLineHasZeroRoll(t *testing.T) {
	curve := line(vec3.T{0, 0, 0}, vec3.T{0, 0, 4}, 9)

	frames, roll, err := revolve.Frames(curve, nil, revolve.OpenEnds())
	require.NoError(t, err)
	require.Len(t, frames, 9)
	require.Len(t, roll, 9)

	for i, r := range roll {
		assert.Zero(t, r, "roll[%d]", i)
	}
	for i := 1; i < len(frames); i++ {
		assert.Equal(t, frames[0], frames[i], "frames must not vary on a straight line")
	}
}

func TestFrames_Orthonormal(t *testing.T) {
	curve := helix(1, 0.5, 1, 17)

	frames, _, err := revolve.Frames(curve, nil, revolve.OpenEnds())
	require.NoError(t, err)

	for i := range frames {
		f := &frames[i]
		assert.InDelta(t, 1, f.Tangent.Length(), tol)
		assert.InDelta(t, 1, f.X.Length(), tol)
		assert.InDelta(t, 1, f.Y.Length(), tol)
		assert.InDelta(t, 0, vec3.Dot(&f.Tangent, &f.X), tol)
		assert.InDelta(t, 0, vec3.Dot(&f.Tangent, &f.Y), tol)
		assert.InDelta(t, 0, vec3.Dot(&f.X, &f.Y), tol)
	}
}

func TestFrames_HelixAccumulatesRoll(t *testing.T) {
	curve := helix(1, 2, 1, 33)

	_, roll, err := revolve.Frames(curve, nil, revolve.OpenEnds())
	require.NoError(t, err)

	assert.Zero(t, roll[0])
	assert.Greater(t, math.Abs(roll[len(roll)-1]), 0.1,
		"a helical curve must accumulate nonzero roll")

	// every step stays well under a half turn, so the accumulation cannot
	// alias even where the orthogonal basis switches branch
	for i := 1; i < len(roll); i++ {
		assert.Less(t, math.Abs(roll[i]-roll[i-1]), 3.0, "step %d", i)
	}
}

func TestFrames_ExplicitTangents(t *testing.T) {
	curve := line(vec3.T{0, 0, 0}, vec3.T{0, 0, 2}, 3)
	tangent := []vec3.T{{0, 0, 2}, {0, 0, 2}, {0, 0, 2}} // non-unit on purpose

	frames, roll, err := revolve.Frames(curve, tangent, revolve.OpenEnds())
	require.NoError(t, err)

	for i := range frames {
		assert.Equal(t, vec3.T{0, 0, 1}, frames[i].Tangent)
		assert.Zero(t, roll[i])
	}
}

func TestFrames_Errors(t *testing.T) {
	straight := line(vec3.T{0, 0, 0}, vec3.T{0, 0, 2}, 3)

	_, _, err := revolve.Frames([]vec3.T{{0, 0, 0}}, nil, revolve.OpenEnds())
	assert.Error(t, err, "single point")

	_, _, err = revolve.Frames(straight, []vec3.T{{0, 0, 1}}, revolve.OpenEnds())
	assert.Error(t, err, "tangent count mismatch")

	_, _, err = revolve.Frames(straight, []vec3.T{{0, 0, 1}, {0, 0, 0}, {0, 0, 1}}, revolve.OpenEnds())
	assert.Error(t, err, "zero tangent")

	degenerate := []vec3.T{{0, 0, 0}, {0, 0, 0}, {0, 0, 1}}
	_, _, err = revolve.Frames(degenerate, nil, revolve.OpenEnds())
	assert.Error(t, err, "zero-length segment")

	spike := []vec3.T{{0, 0, 0}, {0, 0, 1}, {0, 0, 0}}
	_, _, err = revolve.Frames(spike, nil, revolve.OpenEnds())
	assert.Error(t, err, "curve reversal")
}

func TestRevolveAroundCurve_StraightLineMatchesOpenCylinder(t *testing.T) {
	x0 := vec3.T{1, -2, 0.5}
	x1 := vec3.T{1, -2, 4.5}
	const nz, na = 4, 8

	curve := line(x0, x1, nz+1)
	swept, err := revolve.RevolveAroundCurve(curve, []float64{1.5}, na, nil, revolve.OpenEnds(), false)
	require.NoError(t, err)

	nzArg := nz
	cyl, err := revolve.OpenCylinderMesh(&x0, &x1, []float64{1.5}, na, &nzArg)
	require.NoError(t, err)

	assert.Equal(t, cyl.Topology.Triangles(), swept.Topology.Triangles())
	assert.Equal(t, cyl.Topology.NumVertices(), swept.Topology.NumVertices())

	require.Len(t, swept.Geometry, len(cyl.Geometry))
	for i := range swept.Geometry {
		for c := 0; c < 3; c++ {
			assert.InDelta(t, cyl.Geometry[i][c], swept.Geometry[i][c], tol,
				"vertex %d component %d", i, c)
		}
	}
}

func TestRevolveAroundCurve_ClosedEndsUseCurveEndpoints(t *testing.T) {
	curve := line(vec3.T{0, 0, 0}, vec3.T{0, 0, 3}, 4)

	m, err := revolve.RevolveAroundCurve(curve, []float64{0.5, 0.5}, 5, nil, revolve.ClosedBoth(), false)
	require.NoError(t, err)

	require.Len(t, m.Geometry, 2*5+2)
	assert.Equal(t, curve[0], m.Geometry[0])
	assert.Equal(t, curve[3], m.Geometry[len(m.Geometry)-1])
	assert.Equal(t, len(m.Geometry), m.Topology.NumVertices())
}

func TestRevolveAroundCurve_Periodic(t *testing.T) {
	const n, res = 12, 6
	curve := make([]vec3.T, n)
	for i := range curve {
		a := 2 * math.Pi * float64(i) / float64(n)
		curve[i] = vec3.T{2 * math.Cos(a), 2 * math.Sin(a), 0}
	}

	m, err := revolve.RevolveAroundCurve(curve, []float64{0.5}, res, nil, revolve.OpenEnds(), true)
	require.NoError(t, err)

	torus, err := revolve.TorusTopology(n, res)
	require.NoError(t, err)

	assert.Equal(t, torus.Triangles(), m.Topology.Triangles())
	assert.Len(t, m.Geometry, n*res)

	// every ring vertex sits at distance 0.5 from its curve point's circle
	for k := 0; k < n; k++ {
		for j := 0; j < res; j++ {
			pt := m.Geometry[k*res+j]
			d := vec3.Sub(&pt, &curve[k])
			assert.InDelta(t, 0.5, d.Length(), tol)
		}
	}
}

func TestRevolveAroundCurve_VaryingRadius(t *testing.T) {
	curve := line(vec3.T{0, 0, 0}, vec3.T{0, 0, 2}, 3)
	radius := []float64{1, 2, 0.5}

	m, err := revolve.RevolveAroundCurve(curve, radius, 4, nil, revolve.OpenEnds(), false)
	require.NoError(t, err)

	for k := 0; k < 3; k++ {
		for j := 0; j < 4; j++ {
			pt := m.Geometry[k*4+j]
			d := vec3.Sub(&pt, &curve[k])
			assert.InDelta(t, radius[k], d.Length(), tol, "ring %d", k)
		}
	}
}

func TestRevolveAroundCurve_Errors(t *testing.T) {
	curve := line(vec3.T{0, 0, 0}, vec3.T{0, 0, 2}, 3)

	_, err := revolve.RevolveAroundCurve(curve, []float64{1}, 2, nil, revolve.OpenEnds(), false)
	assert.Error(t, err, "resolution too small")

	_, err = revolve.RevolveAroundCurve(curve, []float64{1}, 4, nil, revolve.Closed{Hi: true}, true)
	assert.Error(t, err, "periodic excludes closed")

	_, err = revolve.RevolveAroundCurve(curve, []float64{1, 2}, 4, nil, revolve.OpenEnds(), false)
	assert.Error(t, err, "radius count mismatch")

	_, err = revolve.RevolveAroundCurve(curve[:1], []float64{1}, 4, nil, revolve.OpenEnds(), false)
	assert.Error(t, err, "curve too short")
}
