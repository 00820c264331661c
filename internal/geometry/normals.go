package geometry

// SmoothNormals returns a copy of m with per-vertex normals. Each vertex
// normal is the normalized sum of the unnormalized normals of the triangles
// using it, so larger triangles weigh more. Unused vertices get a zero normal.
func SmoothNormals(m *Mesh) (*Mesh, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	out := m.Clone()
	out.Normals = make([]Vertex, len(m.Vertices))

	for i := 0; i < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		n := FaceNormal(m.Vertices[a], m.Vertices[b], m.Vertices[c])
		out.Normals[a] = out.Normals[a].Add(n)
		out.Normals[b] = out.Normals[b].Add(n)
		out.Normals[c] = out.Normals[c].Add(n)
	}

	for i, n := range out.Normals {
		if n.Len() > 0 {
			out.Normals[i] = n.Normalize()
		}
	}

	return out, nil
}

// FaceNormal returns the unnormalized normal of triangle abc; its length is
// twice the triangle area.
func FaceNormal(a, b, c Vertex) Vertex {
	return b.Sub(a).Cross(c.Sub(a))
}
