package geometry

import (
	"fmt"

	"github.com/GeheimCoding/Dice/pkg/math"
)

// MaxSubdivisions caps the refinement depth. Vertex count grows as 10·4^n+2.
const MaxSubdivisions = 8

// Icosphere returns the unit icosahedron refined iterations times.
func Icosphere(iterations int) (*Mesh, error) {
	if err := checkIterations(iterations); err != nil {
		return nil, err
	}

	base := Icosahedron()
	for i, v := range base.Vertices {
		base.Vertices[i] = math.ProjectToUnit(v)
	}
	return Subdivide(base, iterations)
}

// Subdivide splits every triangle of m into four, iterations times. New
// vertices are edge midpoints projected onto the unit sphere; a midpoint is
// created once per edge per round and shared by both adjacent triangles.
// Existing vertices are kept as they are.
func Subdivide(m *Mesh, iterations int) (*Mesh, error) {
	if err := checkIterations(iterations); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	out := m.Clone()
	out.Normals = nil

	for iter := 0; iter < iterations; iter++ {
		cache := make(edgeCache)
		indices := make([]uint32, 0, len(out.Indices)*4)

		for i := 0; i < len(out.Indices); i += 3 {
			p1, p2, p3 := out.Indices[i], out.Indices[i+1], out.Indices[i+2]

			m1 := out.midpoint(p1, p2, cache)
			m2 := out.midpoint(p2, p3, cache)
			m3 := out.midpoint(p3, p1, cache)

			indices = append(indices,
				p1, m1, m3,
				p2, m2, m1,
				p3, m3, m2,
				m1, m2, m3,
			)
		}

		out.Indices = indices
	}

	return out, nil
}

// midpoint returns the vertex halfway along a-b, creating it on first use.
func (m *Mesh) midpoint(a, b uint32, cache edgeCache) uint32 {
	key := newEdge(a, b)
	if idx, ok := cache[key]; ok {
		return idx
	}

	mid := math.Midpoint(m.Vertices[a], m.Vertices[b])
	idx := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, math.ProjectToUnit(mid))
	cache[key] = idx

	return idx
}

func checkIterations(n int) error {
	if n < 0 || n > MaxSubdivisions {
		return fmt.Errorf("%w: %d (allowed 0..%d)", ErrSubdivisionLimit, n, MaxSubdivisions)
	}
	return nil
}
