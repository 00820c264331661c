package geometry

import (
	"fmt"
	gomath "math"
	"sort"

	"github.com/GeheimCoding/Dice/pkg/math"
)

// Cap orients the fill of one planar boundary ring.
type Cap struct {
	// Center is the point on the cut plane the fan is built around.
	Center Vertex
	// Reference is the in-plane direction of angle zero.
	Reference Vertex
	// Clockwise is the in-plane axis pointing into the clockwise half of the
	// ring, seen from outside. For outward winding it equals Reference × normal.
	Clockwise Vertex
}

// ringVertex is a duplicated boundary vertex with its angle from Reference.
type ringVertex struct {
	index     uint32
	angle     float32
	clockwise bool
}

// FillCap closes the hole bounded by vertices [boundaryStart, len(m.Vertices))
// with a triangle fan. The ring is duplicated so the cap gets its own UVs and
// normals, ordered by angle around c.Center and fanned around a new centre
// vertex. The returned UVs unwrap the cap onto the unit square: the ring maps
// to the inscribed circle and the centre to (0.5, 0.5).
//
// uvs may be shorter than m.Vertices; it is padded with zero UVs first.
// Any normals on m are dropped.
func FillCap(m *Mesh, uvs []UV, c Cap, boundaryStart int) (*Mesh, []UV, error) {
	if err := m.Validate(); err != nil {
		return nil, nil, err
	}
	n := len(m.Vertices)
	if len(uvs) > n {
		return nil, nil, fmt.Errorf("%w: %d uvs for %d vertices", ErrUVMismatch, len(uvs), n)
	}
	if boundaryStart < 0 || n-boundaryStart < 3 {
		return nil, nil, fmt.Errorf("%w: ring [%d, %d)", ErrOpenBoundary, boundaryStart, n)
	}

	out := &Mesh{
		Vertices: make([]Vertex, n, 2*n-boundaryStart+1),
		Indices:  append([]uint32(nil), m.Indices...),
	}
	copy(out.Vertices, m.Vertices)

	outUVs := make([]UV, n, cap(out.Vertices))
	copy(outUVs, uvs)

	cw := c.Center.Add(c.Clockwise)
	ccw := c.Center.Sub(c.Clockwise)

	var left, right []ringVertex
	for i := boundaryStart; i < n; i++ {
		v := m.Vertices[i]
		rv := ringVertex{
			index:     uint32(len(out.Vertices)),
			angle:     math.Angle(c.Reference, v.Sub(c.Center)),
			clockwise: v.Sub(cw).Len() < v.Sub(ccw).Len(),
		}
		out.Vertices = append(out.Vertices, v)
		outUVs = append(outUVs, capUV(rv))

		if rv.clockwise {
			right = append(right, rv)
		} else {
			left = append(left, rv)
		}
	}

	sort.SliceStable(left, func(i, j int) bool { return left[i].angle < left[j].angle })
	sort.SliceStable(right, func(i, j int) bool { return right[i].angle > right[j].angle })
	ring := append(left, right...)

	center := uint32(len(out.Vertices))
	out.Vertices = append(out.Vertices, c.Center)
	outUVs = append(outUVs, UV{0.5, 0.5})

	for i := range ring {
		next := ring[(i+1)%len(ring)]
		out.Indices = append(out.Indices, ring[i].index, next.index, center)
	}

	return out, outUVs, nil
}

// capUV maps a ring angle to the circle inscribed in the unit square.
// The clockwise half continues past π so the unwrap has no seam.
func capUV(rv ringVertex) UV {
	a := rv.angle
	if rv.clockwise {
		a = 2*gomath.Pi - a
	}
	return UV{
		(1 - math.Sin(a)) / 2,
		1 - (1+math.Cos(a))/2,
	}
}
