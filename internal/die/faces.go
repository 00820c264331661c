package die

import "github.com/GeheimCoding/Dice/internal/geometry"

// FaceCount is the number of faces on a six-sided die.
const FaceCount = 6

// Face describes one side of the die: its pip count, the outward axis the
// cutting plane is built on, and the in-plane axes orienting its cap UVs.
// Clockwise is always Reference × Normal so the cap is wound outward.
type Face struct {
	Name      string
	Number    int
	Normal    geometry.Vertex
	Reference geometry.Vertex
	Clockwise geometry.Vertex
}

// Faces lists the die faces in carving order. Opposite faces sum to seven.
var Faces = [FaceCount]Face{
	{Name: "left", Number: 2, Normal: geometry.Vertex{-1, 0, 0}, Reference: geometry.Vertex{0, 1, 0}, Clockwise: geometry.Vertex{0, 0, 1}},
	{Name: "right", Number: 5, Normal: geometry.Vertex{1, 0, 0}, Reference: geometry.Vertex{0, 1, 0}, Clockwise: geometry.Vertex{0, 0, -1}},
	{Name: "up", Number: 6, Normal: geometry.Vertex{0, 1, 0}, Reference: geometry.Vertex{0, 0, -1}, Clockwise: geometry.Vertex{1, 0, 0}},
	{Name: "down", Number: 1, Normal: geometry.Vertex{0, -1, 0}, Reference: geometry.Vertex{0, 0, 1}, Clockwise: geometry.Vertex{1, 0, 0}},
	{Name: "front", Number: 3, Normal: geometry.Vertex{0, 0, -1}, Reference: geometry.Vertex{0, 1, 0}, Clockwise: geometry.Vertex{-1, 0, 0}},
	{Name: "back", Number: 4, Normal: geometry.Vertex{0, 0, 1}, Reference: geometry.Vertex{0, 1, 0}, Clockwise: geometry.Vertex{1, 0, 0}},
}

// FaceByNumber returns the face showing n pips.
func FaceByNumber(n int) (Face, bool) {
	for _, f := range Faces {
		if f.Number == n {
			return f, true
		}
	}
	return Face{}, false
}

// Plane returns the cutting plane at distance threshold along the face axis.
func (f Face) Plane(threshold float32) geometry.Plane {
	return geometry.Plane{Point: f.Normal.Mul(threshold), Normal: f.Normal}
}

// Cap returns the cap orientation for the ring cut at threshold.
func (f Face) Cap(threshold float32) geometry.Cap {
	return geometry.Cap{
		Center:    f.Normal.Mul(threshold),
		Reference: f.Reference,
		Clockwise: f.Clockwise,
	}
}

// AtlasUV packs a cap UV into this face's column of the texture atlas. The
// atlas holds the six caps side by side, ordered by face number.
func (f Face) AtlasUV(uv geometry.UV) geometry.UV {
	return geometry.UV{
		float32(f.Number-1)/FaceCount + uv[0]/FaceCount,
		uv[1],
	}
}
