package geometry

import "fmt"

// Prune removes every vertex for which remove returns true together with
// every triangle that uses one. Remaining vertices, UVs and normals are
// compacted in order and indices are shifted down by the number of removed
// vertices before them. Surviving triangles keep their winding.
//
// uvs may be nil; otherwise it must be parallel to m.Vertices.
func Prune(m *Mesh, uvs []UV, remove func(Vertex) bool) (*Mesh, []UV, error) {
	if err := m.Validate(); err != nil {
		return nil, nil, err
	}
	if uvs != nil && len(uvs) != len(m.Vertices) {
		return nil, nil, fmt.Errorf("%w: %d uvs for %d vertices", ErrUVMismatch, len(uvs), len(m.Vertices))
	}

	removed := make([]bool, len(m.Vertices))
	// shift[i] is the number of removed vertices before index i.
	shift := make([]uint32, len(m.Vertices))

	out := &Mesh{
		Vertices: make([]Vertex, 0, len(m.Vertices)),
		Indices:  make([]uint32, 0, len(m.Indices)),
	}
	var outUVs []UV
	if uvs != nil {
		outUVs = make([]UV, 0, len(uvs))
	}
	hasNormals := len(m.Normals) > 0

	var count uint32
	for i, v := range m.Vertices {
		shift[i] = count
		if remove(v) {
			removed[i] = true
			count++
			continue
		}
		out.Vertices = append(out.Vertices, v)
		if uvs != nil {
			outUVs = append(outUVs, uvs[i])
		}
		if hasNormals {
			out.Normals = append(out.Normals, m.Normals[i])
		}
	}

	for i := 0; i < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		if removed[a] || removed[b] || removed[c] {
			continue
		}
		out.Indices = append(out.Indices, a-shift[a], b-shift[b], c-shift[c])
	}

	return out, outUVs, nil
}
