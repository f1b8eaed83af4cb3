package revolve

import "errors"

// Closed selects which ends of a swept tube are capped by collapsing the
// boundary ring into a single apex vertex.
type Closed struct {
	Lo, Hi bool
}

// ClosedBoth caps both ends.
func ClosedBoth() Closed { return Closed{Lo: true, Hi: true} }

// OpenEnds caps neither end.
func OpenEnds() Closed { return Closed{} }

func (this Closed) count() int {
	n := 0
	if this.Lo {
		n++
	}
	if this.Hi {
		n++
	}

	return n
}

// Construct a cylinder topology with na vertices around and nz quads along
//
// The open cylinder is a grid periodic in the around dimension: the vertex at
// ring j, position i has index j*na+i, giving 2*nz*na triangles over
// na*(nz+1) vertices. For each closed end the boundary ring is collapsed
// into one apex vertex: the quad triangles that would degenerate there are
// dropped, and the remaining fan corners are remapped by collapseEnds. The
// bottom apex takes index 0 and the top apex the last index; each closed end
// removes na-1 vertices.
//
// **params**
// + number of segments along the axis, at least 1
// + number of segments around the circumference, at least 3
// + which ends to cap
//
// **returns**
// + the cylinder topology
func CylinderTopology(nz, na int, closed Closed) (*Topology, error) {
	if nz < 1 {
		return nil, errors.New("Cylinder must have at least 1 segment along its axis!")
	}
	if na < 3 {
		return nil, errors.New("Cylinder must have at least 3 segments around its circumference!")
	}

	tris := make([]Tri, 0, 2*nz*na)

	// both triangles of the quad at ring j, position i
	quadTris := func(j, i int) (Tri, Tri) {
		ring, ringNext := na*j, na*(j+1)
		ip := (i + 1) % na
		return Tri{ring + ip, ring + i, ringNext + i},
			Tri{ring + ip, ringNext + i, ringNext + ip}
	}

	quadRows := func(jLo, jHi int) {
		for j := jLo; j < jHi; j++ {
			for i := 0; i < na; i++ {
				t0, t1 := quadTris(j, i)
				tris = append(tris, t0, t1)
			}
		}
	}

	// keep only the half of each boundary quad that still spans two rings
	// once the boundary ring collapses; second=true keeps the upper half
	fanRow := func(j int, second bool) {
		for i := 0; i < na; i++ {
			t0, t1 := quadTris(j, i)
			if second {
				tris = append(tris, t1)
			} else {
				tris = append(tris, t0)
			}
		}
	}

	switch {
	case closed.Lo && closed.Hi:
		fanRow(0, true)
		quadRows(1, nz-1)
		fanRow(nz-1, false)
	case closed.Lo:
		fanRow(0, true)
		quadRows(1, nz)
	case closed.Hi:
		quadRows(0, nz-1)
		fanRow(nz-1, false)
	default:
		quadRows(0, nz)
	}

	if closed.Lo || closed.Hi {
		for t := range tris {
			for c := range tris[t] {
				tris[t][c] = collapseEnds(tris[t][c], nz, na, closed)
			}
		}
	}

	numVerts := na*(nz+1) - (na-1)*closed.count()

	return NewTopologyUnchecked(tris, numVerts), nil
}

// collapseEnds remaps an open-cylinder vertex index so that every vertex of a
// closed boundary ring lands on that end's shared apex. Clamping to na*nz
// merges the top ring, then shifting down by na-1 with a floor of 0 merges
// the bottom ring and closes the index gap it leaves.
func collapseEnds(idx, nz, na int, closed Closed) int {
	if closed.Hi && idx > na*nz {
		idx = na * nz
	}
	if closed.Lo {
		idx -= na - 1
		if idx < 0 {
			idx = 0
		}
	}

	return idx
}
