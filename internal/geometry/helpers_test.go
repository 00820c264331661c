package geometry

import (
	gomath "math"
	"testing"
)

func approx(a, b, eps float32) bool {
	return gomath.Abs(float64(a-b)) <= float64(eps)
}

func totalArea(m *Mesh) float32 {
	var area float32
	for i := 0; i < len(m.Indices); i += 3 {
		a, b, c := m.Vertices[m.Indices[i]], m.Vertices[m.Indices[i+1]], m.Vertices[m.Indices[i+2]]
		area += FaceNormal(a, b, c).Len() / 2
	}
	return area
}

// quantize groups positions that differ by less than 1e-5.
func quantize(v Vertex) [3]int64 {
	const q = 1e5
	return [3]int64{
		int64(gomath.Round(float64(v[0]) * q)),
		int64(gomath.Round(float64(v[1]) * q)),
		int64(gomath.Round(float64(v[2]) * q)),
	}
}

func mustIcosphere(t testing.TB, n int) *Mesh {
	t.Helper()
	m, err := Icosphere(n)
	if err != nil {
		t.Fatalf("Icosphere(%d): %v", n, err)
	}
	return m
}

func assertValid(t *testing.T, m *Mesh) {
	t.Helper()
	if err := m.Validate(); err != nil {
		t.Fatalf("invalid mesh: %v", err)
	}
}
