package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMidpoint(t *testing.T) {
	got := Midpoint(mgl32.Vec3{0, 2, 4}, mgl32.Vec3{2, 4, -4})
	want := mgl32.Vec3{1, 3, 0}
	if got != want {
		t.Errorf("Midpoint() = %v, want %v", got, want)
	}
}

func TestProjectToUnit(t *testing.T) {
	v := ProjectToUnit(mgl32.Vec3{3, 4, 12})
	l := v.Len()
	if l < 0.999 || l > 1.001 {
		t.Errorf("ProjectToUnit().Len() = %v, want ~1", l)
	}

	zero := ProjectToUnit(mgl32.Vec3{})
	if zero != (mgl32.Vec3{}) {
		t.Errorf("ProjectToUnit(zero) = %v, want zero", zero)
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name string
		a, b mgl32.Vec3
		want float64
	}{
		{"same", mgl32.Vec3{1, 0, 0}, mgl32.Vec3{2, 0, 0}, 0},
		{"orthogonal", mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 3}, math.Pi / 2},
		{"opposite", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, -1, 0}, math.Pi},
		{"diagonal", mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 1, 0}, math.Pi / 4},
		{"zero length", mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Angle(tt.a, tt.b)
			if math.Abs(float64(got)-tt.want) > 1e-5 {
				t.Errorf("Angle(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMaxAbs(t *testing.T) {
	if got := MaxAbs(mgl32.Vec3{0.5, -0.9, 0.2}); got != 0.9 {
		t.Errorf("MaxAbs() = %v, want 0.9", got)
	}
}

func TestLerp(t *testing.T) {
	a := mgl32.Vec3{0, 0, 0}
	b := mgl32.Vec3{10, 20, 30}

	result := Lerp(a, b, 0.5)
	expected := mgl32.Vec3{5, 10, 15}

	for i := 0; i < 3; i++ {
		if math.Abs(float64(result[i]-expected[i])) > 0.001 {
			t.Errorf("Lerp component %d: expected %v, got %v", i, expected[i], result[i])
		}
	}
}
