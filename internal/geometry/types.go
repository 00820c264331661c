// Package geometry builds and edits indexed triangle meshes: icosphere
// subdivision, plane clipping, cap filling and vertex pruning.
package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a mesh position.
type Vertex = mgl32.Vec3

// UV is a per-vertex texture coordinate.
type UV = mgl32.Vec2

// Mesh is a triangle list. Every three consecutive indices form one triangle
// wound counter-clockwise around its outward normal.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	// Normals is empty until SmoothNormals has run, then parallel to Vertices.
	Normals []Vertex
}

// Plane is an infinite plane. Normal need not be unit length; its direction
// marks the outside half-space.
type Plane struct {
	Point  Vertex
	Normal Vertex
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min Vertex
	Max Vertex
}

// Stats summarizes a mesh for logging and tooling.
type Stats struct {
	Vertices  int
	Triangles int
	Bounds    Bounds
}

// TriangleCount returns the number of triangles in the index list.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the vertex indices of triangle i.
func (m *Mesh) Triangle(i int) [3]uint32 {
	return [3]uint32{m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]}
}

// Clone returns a deep copy of m.
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{
		Vertices: append([]Vertex(nil), m.Vertices...),
		Indices:  append([]uint32(nil), m.Indices...),
	}
	if len(m.Normals) > 0 {
		out.Normals = append([]Vertex(nil), m.Normals...)
	}
	return out
}

// Validate checks the triangle list invariants.
func (m *Mesh) Validate() error {
	if m == nil || m.Vertices == nil {
		return fmt.Errorf("%w: no vertex positions", ErrMalformedMesh)
	}
	if m.Indices == nil {
		return fmt.Errorf("%w: no index buffer", ErrMalformedMesh)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a multiple of 3", ErrMalformedMesh, len(m.Indices))
	}
	n := uint32(len(m.Vertices))
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%w: index %d at %d out of range (%d vertices)", ErrMalformedMesh, idx, i, n)
		}
	}
	if len(m.Normals) > 0 && len(m.Normals) != len(m.Vertices) {
		return fmt.Errorf("%w: %d normals for %d vertices", ErrMalformedMesh, len(m.Normals), len(m.Vertices))
	}
	return nil
}

// Stats returns vertex/triangle counts and the bounding box of m.
func (m *Mesh) Stats() Stats {
	s := Stats{
		Vertices:  len(m.Vertices),
		Triangles: m.TriangleCount(),
	}
	if len(m.Vertices) == 0 {
		return s
	}
	s.Bounds = Bounds{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		updateBounds(&s.Bounds, v)
	}
	return s
}

func updateBounds(b *Bounds, p Vertex) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// edge is an unordered vertex pair normalized as (min, max).
type edge [2]uint32

func newEdge(a, b uint32) edge {
	if a < b {
		return edge{a, b}
	}
	return edge{b, a}
}

// edgeCache maps an edge to the vertex created on it during one pass.
type edgeCache map[edge]uint32
