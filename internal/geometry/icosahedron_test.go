package geometry

import "testing"

func TestIcosahedron(t *testing.T) {
	m := Icosahedron()
	assertValid(t, m)

	if len(m.Vertices) != 12 {
		t.Errorf("expected 12 vertices, got %d", len(m.Vertices))
	}
	if m.TriangleCount() != 20 {
		t.Errorf("expected 20 triangles, got %d", m.TriangleCount())
	}

	// Every vertex of the (0, ±1, ±φ) icosahedron sits at radius sqrt(1+φ²).
	want := Vertex{0, 1, (1 + 2.236068) / 2}.Len()
	for i, v := range m.Vertices {
		if !approx(v.Len(), want, 1e-5) {
			t.Errorf("vertex %d: radius %v, want %v", i, v.Len(), want)
		}
	}
}

func TestIcosahedronOutwardWinding(t *testing.T) {
	m := Icosahedron()
	for i := 0; i < m.TriangleCount(); i++ {
		tri := m.Triangle(i)
		a, b, c := m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]
		centroid := a.Add(b).Add(c)
		if FaceNormal(a, b, c).Dot(centroid) <= 0 {
			t.Errorf("triangle %d %v faces inward", i, tri)
		}
	}
}

func TestIcosahedronEdgesShared(t *testing.T) {
	m := Icosahedron()
	edges := make(map[edge]int)
	for i := 0; i < len(m.Indices); i += 3 {
		for e := 0; e < 3; e++ {
			edges[newEdge(m.Indices[i+e], m.Indices[i+(e+1)%3])]++
		}
	}
	if len(edges) != 30 {
		t.Errorf("expected 30 edges, got %d", len(edges))
	}
	for e, n := range edges {
		if n != 2 {
			t.Errorf("edge %v used by %d triangles, want 2", e, n)
		}
	}
}
