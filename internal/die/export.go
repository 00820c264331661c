package die

import "github.com/GeheimCoding/Dice/pkg/formats"

// MeshData exposes the die as an export-ready mesh. The slices are shared
// with the die, not copied.
func (d *Die) MeshData() *formats.MeshData {
	return &formats.MeshData{
		Positions: d.Mesh.Vertices,
		Normals:   d.Mesh.Normals,
		UVs:       d.UVs,
		Indices:   d.Mesh.Indices,
	}
}
