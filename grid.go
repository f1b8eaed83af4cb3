package revolve

import "errors"

// Construct a rectangular grid topology with nx+1 by ny+1 vertices
//
// The vertex at grid position (i, j) has index i*(ny+1)+j. Each of the nx*ny
// quads is split into two triangles along the diagonal from (i, j+1) to
// (i+1, j); the same diagonal is used for every quad so adjacent triangles
// share edges consistently.
//
// **params**
// + number of quads along the major dimension, at least 1
// + number of quads along the minor dimension, at least 1
//
// **returns**
// + a topology of 2*nx*ny triangles over (nx+1)*(ny+1) vertices
func GridTopology(nx, ny int) (*Topology, error) {
	if nx < 1 || ny < 1 {
		return nil, errors.New("Grid dimensions must be at least 1!")
	}

	tris := make([]Tri, 0, 2*nx*ny)
	for i := 0; i < nx; i++ {
		row, rowNext := i*(ny+1), (i+1)*(ny+1)
		for j := 0; j < ny; j++ {
			jp := j + 1
			tris = append(tris,
				Tri{row + jp, row + j, rowNext + j},
				Tri{row + jp, rowNext + j, rowNext + jp})
		}
	}

	return NewTopologyUnchecked(tris, (nx+1)*(ny+1)), nil
}

// Construct a torus topology with nx by ny vertices, periodic in both
// dimensions
//
// The vertex at grid position (i, j) has index i*ny+j; both i and j wrap.
// A matching geometry lists vertices sorted primarily by the major dimension
// (around the hole) and secondarily by the minor dimension (through the
// hole). The quad split is the same as GridTopology's.
//
// **params**
// + number of vertices along the major dimension, at least 1
// + number of vertices along the minor dimension, at least 1
//
// **returns**
// + a topology of 2*nx*ny triangles over nx*ny vertices
func TorusTopology(nx, ny int) (*Topology, error) {
	if nx < 1 || ny < 1 {
		return nil, errors.New("Torus dimensions must be at least 1!")
	}

	tris := make([]Tri, 0, 2*nx*ny)
	for i := 0; i < nx; i++ {
		row, rowNext := i*ny, ((i+1)%nx)*ny
		for j := 0; j < ny; j++ {
			jp := (j + 1) % ny
			tris = append(tris,
				Tri{row + jp, row + j, rowNext + j},
				Tri{row + jp, rowNext + j, rowNext + jp})
		}
	}

	return NewTopologyUnchecked(tris, nx*ny), nil
}
