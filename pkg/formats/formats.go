// Package formats provides readers and writers for mesh file formats.
package formats

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Shared format errors.
var (
	ErrNoTriangles   = errors.New("mesh has no triangles")
	ErrRaggedIndices = errors.New("index count is not a multiple of 3")
	ErrIndexRange    = errors.New("index out of range")
	ErrAttribute     = errors.New("attribute count does not match positions")
)

// MeshData is an indexed triangle list as written to disk. Normals and UVs
// are optional; when present they are parallel to Positions.
type MeshData struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

// check validates the mesh before encoding.
func (m *MeshData) check() error {
	if len(m.Indices) == 0 {
		return ErrNoTriangles
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d", ErrRaggedIndices, len(m.Indices))
	}
	n := uint32(len(m.Positions))
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%w: index %d at %d (%d positions)", ErrIndexRange, idx, i, n)
		}
	}
	if len(m.Normals) > 0 && len(m.Normals) != len(m.Positions) {
		return fmt.Errorf("%w: %d normals", ErrAttribute, len(m.Normals))
	}
	if len(m.UVs) > 0 && len(m.UVs) != len(m.Positions) {
		return fmt.Errorf("%w: %d uvs", ErrAttribute, len(m.UVs))
	}
	return nil
}
