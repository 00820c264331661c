package formats

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ writes m as a single Wavefront OBJ object. Texture V is flipped
// because OBJ puts the texture origin at the bottom left.
func WriteOBJ(w io.Writer, name string, m *MeshData) error {
	if err := m.check(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	hasUV := len(m.UVs) > 0
	hasNormal := len(m.Normals) > 0

	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", len(m.Positions), len(m.Indices)/3)
	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}

	for _, p := range m.Positions {
		fmt.Fprintf(bw, "v %g %g %g\n", p[0], p[1], p[2])
	}
	for _, uv := range m.UVs {
		fmt.Fprintf(bw, "vt %g %g\n", uv[0], 1-uv[1])
	}
	for _, n := range m.Normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n[0], n[1], n[2])
	}

	for i := 0; i < len(m.Indices); i += 3 {
		bw.WriteString("f")
		for _, idx := range m.Indices[i : i+3] {
			// OBJ indices are 1-based.
			j := idx + 1
			switch {
			case hasUV && hasNormal:
				fmt.Fprintf(bw, " %d/%d/%d", j, j, j)
			case hasUV:
				fmt.Fprintf(bw, " %d/%d", j, j)
			case hasNormal:
				fmt.Fprintf(bw, " %d//%d", j, j)
			default:
				fmt.Fprintf(bw, " %d", j)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
