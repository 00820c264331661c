package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
)

// STL format errors.
var (
	ErrTruncatedSTLData = errors.New("truncated STL data")
)

const (
	stlHeaderSize   = 80
	stlTriangleSize = 50 // normal + 3 vertices (12 float32) + attribute word
)

// STLTriangle is one facet of a binary STL file.
type STLTriangle struct {
	Normal   mgl32.Vec3
	Vertices [3]mgl32.Vec3
}

// STL is a parsed binary STL file.
type STL struct {
	Header    [stlHeaderSize]byte
	Triangles []STLTriangle
}

// WriteSTL writes m as binary STL. Facet normals are computed from the
// triangle winding; degenerate triangles get a zero normal.
func WriteSTL(w io.Writer, header string, m *MeshData) error {
	if err := m.check(); err != nil {
		return err
	}

	var hdr [stlHeaderSize]byte
	copy(hdr[:], header)

	count := uint32(len(m.Indices) / 3)
	buf := bytes.NewBuffer(make([]byte, 0, stlHeaderSize+4+int(count)*stlTriangleSize))
	buf.Write(hdr[:])
	binary.Write(buf, binary.LittleEndian, count)

	for i := 0; i < len(m.Indices); i += 3 {
		a, b, c := m.Positions[m.Indices[i]], m.Positions[m.Indices[i+1]], m.Positions[m.Indices[i+2]]
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Len() > 0 {
			n = n.Normalize()
		}
		binary.Write(buf, binary.LittleEndian, n)
		binary.Write(buf, binary.LittleEndian, a)
		binary.Write(buf, binary.LittleEndian, b)
		binary.Write(buf, binary.LittleEndian, c)
		binary.Write(buf, binary.LittleEndian, uint16(0))
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// ParseSTL parses binary STL data.
func ParseSTL(data []byte) (*STL, error) {
	if len(data) < stlHeaderSize+4 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedSTLData, len(data))
	}

	stl := &STL{}
	copy(stl.Header[:], data[:stlHeaderSize])

	count := binary.LittleEndian.Uint32(data[stlHeaderSize:])
	if want := stlHeaderSize + 4 + int(count)*stlTriangleSize; len(data) < want {
		return nil, fmt.Errorf("%w: %d triangles need %d bytes, have %d", ErrTruncatedSTLData, count, want, len(data))
	}

	r := bytes.NewReader(data[stlHeaderSize+4:])
	stl.Triangles = make([]STLTriangle, count)
	for i := range stl.Triangles {
		var facet struct {
			Normal   mgl32.Vec3
			Vertices [3]mgl32.Vec3
			Attr     uint16
		}
		if err := binary.Read(r, binary.LittleEndian, &facet); err != nil {
			return nil, fmt.Errorf("reading triangle %d: %w", i, err)
		}
		stl.Triangles[i] = STLTriangle{Normal: facet.Normal, Vertices: facet.Vertices}
	}

	return stl, nil
}

// HeaderText returns the header with trailing NUL bytes removed.
func (s *STL) HeaderText() string {
	return string(bytes.TrimRight(s.Header[:], "\x00"))
}
