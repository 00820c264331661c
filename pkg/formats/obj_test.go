package formats

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func countPrefix(lines []string, prefix string) int {
	n := 0
	for _, l := range lines {
		if strings.HasPrefix(l, prefix) {
			n++
		}
	}
	return n
}

func TestWriteOBJ_Full(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, "d6", quad()); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if countPrefix(lines, "v ") != 4 {
		t.Errorf("expected 4 positions, got %d", countPrefix(lines, "v "))
	}
	if countPrefix(lines, "vt ") != 4 {
		t.Errorf("expected 4 uvs, got %d", countPrefix(lines, "vt "))
	}
	if countPrefix(lines, "vn ") != 4 {
		t.Errorf("expected 4 normals, got %d", countPrefix(lines, "vn "))
	}
	if countPrefix(lines, "f ") != 2 {
		t.Errorf("expected 2 faces, got %d", countPrefix(lines, "f "))
	}
	if !strings.Contains(buf.String(), "o d6\n") {
		t.Error("missing object name")
	}
	if !strings.Contains(buf.String(), "f 1/1/1 2/2/2 3/3/3\n") {
		t.Errorf("unexpected face encoding:\n%s", buf.String())
	}
}

func TestWriteOBJ_FlipsV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, "", quad()); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}

	// First UV is (0,0) in image space, so (0,1) in OBJ space.
	if !strings.Contains(buf.String(), "vt 0 1\n") {
		t.Errorf("expected flipped first uv:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "\no ") {
		t.Error("empty name should not emit an object line")
	}
}

func TestWriteOBJ_FaceStyles(t *testing.T) {
	tests := []struct {
		name    string
		uvs     bool
		normals bool
		face    string
	}{
		{"positions only", false, false, "f 1 2 3\n"},
		{"uvs", true, false, "f 1/1 2/2 3/3\n"},
		{"normals", false, true, "f 1//1 2//2 3//3\n"},
		{"both", true, true, "f 1/1/1 2/2/2 3/3/3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := quad()
			if !tt.uvs {
				m.UVs = nil
			}
			if !tt.normals {
				m.Normals = nil
			}

			var buf bytes.Buffer
			if err := WriteOBJ(&buf, "", m); err != nil {
				t.Fatalf("WriteOBJ failed: %v", err)
			}
			if !strings.Contains(buf.String(), tt.face) {
				t.Errorf("expected %q in:\n%s", tt.face, buf.String())
			}
		})
	}
}

func TestWriteOBJ_Invalid(t *testing.T) {
	m := quad()
	m.Indices = m.Indices[:2]

	var buf bytes.Buffer
	err := WriteOBJ(&buf, "", m)
	if !errors.Is(err, ErrRaggedIndices) {
		t.Errorf("expected ErrRaggedIndices, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written for an invalid mesh")
	}
}
