package revolve

import (
	"errors"
	"fmt"

	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

// Tri is a triangle as a triple of vertex indices.
type Tri [3]int

// Seg is a line segment as a pair of vertex indices.
type Seg [2]int

// Topology is an immutable ordered collection of triangles over a declared
// number of vertices. Every index of every triangle is in [0, NumVertices).
type Topology struct {
	tris     []Tri
	numVerts int
}

func NewTopologyUnchecked(tris []Tri, numVerts int) *Topology {
	return &Topology{tris, numVerts}
}

func NewTopology(tris []Tri, numVerts int) (*Topology, error) {
	this := NewTopologyUnchecked(tris, numVerts)
	if err := this.check(); err != nil {
		return nil, err
	}

	return this, nil
}

func (this *Topology) check() error {
	if this.numVerts < 0 {
		return errors.New("Vertex count cannot be negative!")
	}

	for _, tri := range this.tris {
		for _, idx := range tri {
			if idx < 0 || idx >= this.numVerts {
				return fmt.Errorf("Triangle index %d out of range for %d vertices!", idx, this.numVerts)
			}
		}
	}

	return nil
}

func (this *Topology) Triangles() []Tri {
	tris := make([]Tri, len(this.tris))
	copy(tris, this.tris)

	return tris
}

func (this *Topology) NumTriangles() int {
	return len(this.tris)
}

func (this *Topology) NumVertices() int {
	return this.numVerts
}

// MaxIndex returns the largest vertex index referenced by any triangle,
// or -1 if there are no triangles.
func (this *Topology) MaxIndex() int {
	max := -1
	for _, tri := range this.tris {
		for _, idx := range tri {
			if idx > max {
				max = idx
			}
		}
	}

	return max
}

// SegmentTopology is an immutable ordered collection of segments over a
// declared number of vertices, with the same index contract as Topology.
type SegmentTopology struct {
	segs     []Seg
	numVerts int
}

func NewSegmentTopologyUnchecked(segs []Seg, numVerts int) *SegmentTopology {
	return &SegmentTopology{segs, numVerts}
}

func NewSegmentTopology(segs []Seg, numVerts int) (*SegmentTopology, error) {
	this := NewSegmentTopologyUnchecked(segs, numVerts)
	if err := this.check(); err != nil {
		return nil, err
	}

	return this, nil
}

func (this *SegmentTopology) check() error {
	if this.numVerts < 0 {
		return errors.New("Vertex count cannot be negative!")
	}

	for _, seg := range this.segs {
		for _, idx := range seg {
			if idx < 0 || idx >= this.numVerts {
				return fmt.Errorf("Segment index %d out of range for %d vertices!", idx, this.numVerts)
			}
		}
	}

	return nil
}

func (this *SegmentTopology) Segments() []Seg {
	segs := make([]Seg, len(this.segs))
	copy(segs, this.segs)

	return segs
}

func (this *SegmentTopology) NumSegments() int {
	return len(this.segs)
}

func (this *SegmentTopology) NumVertices() int {
	return this.numVerts
}

// Geometry is an ordered sequence of vertex positions, index-aligned with a
// Topology: the point at position k is the vertex referenced by index k.
type Geometry []vec3.T

// Return a copy of the geometry with every point transformed by a matrix
//
// **params**
// + transformation matrix
//
// **returns**
// + the transformed geometry; the receiver is unchanged
func (this Geometry) Transformed(mat *mat4.T) Geometry {
	pts := make(Geometry, len(this))
	for i := range this {
		pts[i] = mat.MulVec3(&this[i])
	}

	return pts
}

// Mesh pairs a topology with its index-aligned geometry.
type Mesh struct {
	Topology *Topology
	Geometry Geometry
}
