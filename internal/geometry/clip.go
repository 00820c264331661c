package geometry

import (
	"fmt"

	"github.com/GeheimCoding/Dice/pkg/math"
)

// Numerical knobs for edge/plane intersection.
const (
	// ParallelEpsilon is the largest |normal·edge| still treated as parallel.
	ParallelEpsilon float32 = 1.1920929e-07 // float32 machine epsilon

	// SegmentMin and SegmentMax bound the accepted edge parameter t.
	SegmentMin float32 = 0
	SegmentMax float32 = 1
)

// IntersectSegment intersects the segment a-b with plane p.
// Edges parallel to the plane never intersect.
func IntersectSegment(a, b Vertex, p Plane) (Vertex, bool) {
	line := b.Sub(a)
	dot := p.Normal.Dot(line)
	if math.Abs(dot) <= ParallelEpsilon {
		return Vertex{}, false
	}

	t := p.Normal.Dot(a.Sub(p.Point)) / -dot
	if t < SegmentMin || t > SegmentMax {
		return Vertex{}, false
	}
	return math.Lerp(a, b, t), true
}

// slot pairs a triangle corner with the vertex cut into its outgoing edge.
type slot struct {
	corner uint32
	cut    uint32
	hasCut bool
}

// Clip cuts every triangle of m that crosses plane p. Crossing points become
// new vertices shared between neighbouring triangles, and each cut triangle is
// replaced by triangles that cover it exactly with the same winding.
// Nothing is removed; new vertices are appended after the existing ones.
func Clip(m *Mesh, p Plane) (*Mesh, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	out := &Mesh{
		Vertices: append([]Vertex(nil), m.Vertices...),
		Indices:  make([]uint32, 0, len(m.Indices)),
	}
	cache := make(edgeCache)

	for i := 0; i < len(m.Indices); i += 3 {
		tri := [3]uint32{m.Indices[i], m.Indices[i+1], m.Indices[i+2]}

		var hits [3]Vertex
		var hit [3]bool
		count := 0
		for e := 0; e < 3; e++ {
			hits[e], hit[e] = IntersectSegment(m.Vertices[tri[e]], m.Vertices[tri[(e+1)%3]], p)
			if hit[e] {
				count++
			}
		}

		// A single hit means the plane only grazes a corner.
		if count <= 1 {
			out.Indices = append(out.Indices, tri[:]...)
			continue
		}

		var slots [3]slot
		for e := 0; e < 3; e++ {
			slots[e].corner = tri[e]
			key := newEdge(tri[e], tri[(e+1)%3])
			if idx, ok := cache[key]; ok {
				slots[e].cut, slots[e].hasCut = idx, true
				continue
			}
			if hit[e] {
				idx := uint32(len(out.Vertices))
				out.Vertices = append(out.Vertices, hits[e])
				cache[key] = idx
				slots[e].cut, slots[e].hasCut = idx, true
			}
		}

		fan, err := retriangulate(slots)
		if err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i/3, err)
		}
		out.Indices = append(out.Indices, fan...)
	}

	return out, nil
}

// retriangulate covers a cut triangle. Each corner keeps one triangle made of
// the corner, its own cut (or the next corner when its outgoing edge is
// whole), and the nearest cut found walking backwards around the triangle.
// With all three edges cut the middle triangle is added as well, making it a
// 1-to-4 split.
func retriangulate(s [3]slot) ([]uint32, error) {
	out := make([]uint32, 0, 12)

	for t := 0; t < 3; t++ {
		second := s[(t+1)%3].corner
		if s[t].hasCut {
			second = s[t].cut
		}

		x := (t + 2) % 3
		found := false
		for step := 0; step < 3; step++ {
			if s[x].hasCut {
				found = true
				break
			}
			x = (x + 2) % 3
		}
		if !found {
			return nil, ErrDegenerateTriangle
		}

		out = append(out, s[t].corner, second, s[x].cut)
	}

	if s[0].hasCut && s[1].hasCut && s[2].hasCut {
		out = append(out, s[0].cut, s[1].cut, s[2].cut)
	}

	return out, nil
}
