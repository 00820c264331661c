// Package die carves a rounded six-sided die out of an icosphere.
package die

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/GeheimCoding/Dice/internal/geometry"
	"github.com/GeheimCoding/Dice/internal/logger"
	"github.com/GeheimCoding/Dice/pkg/math"
)

// PruneEpsilon is the slack above the threshold that still counts as on the
// cutting plane, so rounding in the intersection points does not punch holes.
const PruneEpsilon float32 = 1e-5

// MinSeamlessThreshold is where the caps of adjacent faces start to meet.
// At or below it they overlap along the cube edges and the carved mesh has
// holes and untextured flat regions; Build still runs but warns.
const MinSeamlessThreshold float32 = 1 / gomath.Sqrt2

// Options controls the die shape.
type Options struct {
	// Subdivisions is the icosphere refinement depth, 0..8.
	Subdivisions int `yaml:"subdivisions"`
	// Threshold is the distance of the cutting planes from the centre of the
	// unit sphere. Larger values give a rounder die.
	Threshold float32 `yaml:"threshold"`
	// Size is the final edge length.
	Size float32 `yaml:"size"`
}

// DefaultOptions returns the shape used for the playable die.
func DefaultOptions() Options {
	return Options{
		Subdivisions: 4,
		Threshold:    0.72,
		Size:         0.6,
	}
}

// Validate checks the option ranges.
func (o Options) Validate() error {
	if o.Subdivisions < 0 || o.Subdivisions > geometry.MaxSubdivisions {
		return fmt.Errorf("%w: %d (allowed 0..%d)", geometry.ErrSubdivisionLimit, o.Subdivisions, geometry.MaxSubdivisions)
	}
	if !(o.Threshold > 0 && o.Threshold < 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, o.Threshold)
	}
	if !(o.Size > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidSize, o.Size)
	}
	return nil
}

// CapsOverlap reports whether the cutting planes are close enough to the
// centre for neighbouring caps to intersect.
func (o Options) CapsOverlap() bool {
	return o.Threshold <= MinSeamlessThreshold
}

// Die is a finished die mesh. UVs is parallel to Mesh.Vertices. Only cap
// vertices carry atlas coordinates; the rounded edge vertices between caps
// keep UV (0,0), which falls in face 1's band.
type Die struct {
	Mesh    *geometry.Mesh
	UVs     []geometry.UV
	Options Options
}

// Build carves the die: each face in Faces order is clipped and capped, then
// everything outside the six planes is pruned, the result is scaled to
// opts.Size and smooth normals are computed.
func Build(opts Options) (*Die, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	defer logger.Track("die.Build")()

	if opts.CapsOverlap() {
		logger.Warn("cutting planes overlap, die will have holes",
			zap.Float32("threshold", opts.Threshold),
			zap.Float32("min_seamless", MinSeamlessThreshold))
	}

	mesh, err := geometry.Icosphere(opts.Subdivisions)
	if err != nil {
		return nil, err
	}
	logger.Debug("icosphere ready",
		zap.Int("subdivisions", opts.Subdivisions),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", mesh.TriangleCount()))

	var uvs []geometry.UV
	for _, f := range Faces {
		mesh, uvs, err = carve(mesh, uvs, f, opts.Threshold)
		if err != nil {
			return nil, fmt.Errorf("carving %s face: %w", f.Name, err)
		}
		logger.Debug("face carved",
			zap.String("face", f.Name),
			zap.Int("number", f.Number),
			zap.Int("vertices", len(mesh.Vertices)),
			zap.Int("triangles", mesh.TriangleCount()))
	}

	limit := opts.Threshold + PruneEpsilon
	mesh, uvs, err = geometry.Prune(mesh, uvs, func(v geometry.Vertex) bool {
		return math.MaxAbs(v) > limit
	})
	if err != nil {
		return nil, fmt.Errorf("pruning: %w", err)
	}

	// Prune returned a fresh buffer, so scaling in place is safe.
	s := opts.Size / (2 * opts.Threshold)
	scale := mgl32.Scale3D(s, s, s)
	for i, v := range mesh.Vertices {
		mesh.Vertices[i] = mgl32.TransformCoordinate(v, scale)
	}

	mesh, err = geometry.SmoothNormals(mesh)
	if err != nil {
		return nil, fmt.Errorf("normals: %w", err)
	}

	logger.Info("die built",
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Float32("threshold", opts.Threshold),
		zap.Float32("size", opts.Size))

	return &Die{Mesh: mesh, UVs: uvs, Options: opts}, nil
}

// carve cuts one face plane and caps the ring it leaves, placing the cap
// UVs in the face's atlas column.
func carve(mesh *geometry.Mesh, uvs []geometry.UV, f Face, threshold float32) (*geometry.Mesh, []geometry.UV, error) {
	ringStart := len(mesh.Vertices)

	clipped, err := geometry.Clip(mesh, f.Plane(threshold))
	if err != nil {
		return nil, nil, err
	}

	capped, cappedUVs, err := geometry.FillCap(clipped, uvs, f.Cap(threshold), ringStart)
	if err != nil {
		return nil, nil, err
	}

	for i := len(clipped.Vertices); i < len(capped.Vertices); i++ {
		cappedUVs[i] = f.AtlasUV(cappedUVs[i])
	}

	return capped, cappedUVs, nil
}

// Stats returns the mesh statistics of the die.
func (d *Die) Stats() geometry.Stats {
	return d.Mesh.Stats()
}
