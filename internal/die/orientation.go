package die

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Up is the world up axis used to read a resting die.
var Up = mgl32.Vec3{0, 1, 0}

// TopFace returns the number on the face pointing most nearly up when the
// die is rotated by rot.
func TopFace(rot mgl32.Quat) int {
	best := Faces[0]
	bestDot := rot.Rotate(best.Normal).Dot(Up)
	for _, f := range Faces[1:] {
		if d := rot.Rotate(f.Normal).Dot(Up); d > bestDot {
			best, bestDot = f, d
		}
	}
	return best.Number
}

// Roll collects the results of dice that came to rest.
type Roll struct {
	Faces []int
}

// Add records one result.
func (r *Roll) Add(face int) {
	r.Faces = append(r.Faces, face)
}

// Total returns the sum of all results.
func (r *Roll) Total() int {
	total := 0
	for _, f := range r.Faces {
		total += f
	}
	return total
}

// String formats the roll as "Roll: 3 + 5".
func (r *Roll) String() string {
	if len(r.Faces) == 0 {
		return "Roll:"
	}
	parts := make([]string, len(r.Faces))
	for i, f := range r.Faces {
		parts[i] = fmt.Sprint(f)
	}
	return "Roll: " + strings.Join(parts, " + ")
}
