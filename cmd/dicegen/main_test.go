package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/GeheimCoding/Dice/internal/config"
	"github.com/GeheimCoding/Dice/internal/die"
	"github.com/GeheimCoding/Dice/pkg/formats"
)

func TestParseRotation(t *testing.T) {
	tests := []struct {
		in   string
		face int
	}{
		{"0,1,0:0", 6},
		{"1,0,0:180", 1},
		{"1,0,0:90", 3},
		{"1,0,0:-90", 4},
		{"0,0,1:90", 5},
		{"0,0,2: 90", 5},
		{" 0, 0, 1 :-90", 2},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			rot, err := parseRotation(tt.in)
			if err != nil {
				t.Fatalf("parseRotation failed: %v", err)
			}
			if got := die.TopFace(rot); got != tt.face {
				t.Errorf("expected face %d, got %d", tt.face, got)
			}
		})
	}
}

func TestParseRotation_Invalid(t *testing.T) {
	for _, in := range []string{"", "1,0,0", "1,0:90", "a,0,0:90", "0,0,0:90", "1,0,0:x"} {
		if _, err := parseRotation(in); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestWriteMesh(t *testing.T) {
	md := &formats.MeshData{
		Positions: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Indices:   []uint32{0, 1, 2},
	}
	dir := filepath.Join(t.TempDir(), "out")

	objPath := filepath.Join(dir, "d6.obj")
	if err := writeMesh(objPath, "d6", config.FormatOBJ, md); err != nil {
		t.Fatalf("writeMesh obj failed: %v", err)
	}
	data, err := os.ReadFile(objPath)
	if err != nil {
		t.Fatalf("reading obj: %v", err)
	}
	if !strings.Contains(string(data), "f 1 2 3") {
		t.Errorf("unexpected obj:\n%s", data)
	}

	stlPath := filepath.Join(dir, "d6.stl")
	if err := writeMesh(stlPath, "d6", config.FormatSTL, md); err != nil {
		t.Fatalf("writeMesh stl failed: %v", err)
	}
	data, err = os.ReadFile(stlPath)
	if err != nil {
		t.Fatalf("reading stl: %v", err)
	}
	stl, err := formats.ParseSTL(data)
	if err != nil {
		t.Fatalf("ParseSTL failed: %v", err)
	}
	if len(stl.Triangles) != 1 || stl.HeaderText() != "dicegen d6" {
		t.Errorf("unexpected stl: %d triangles, header %q", len(stl.Triangles), stl.HeaderText())
	}
}

func TestWriteMesh_RemovesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.obj")
	md := &formats.MeshData{Positions: []mgl32.Vec3{{0, 0, 0}}}

	err := writeMesh(path, "bad", config.FormatOBJ, md)
	if !errors.Is(err, formats.ErrNoTriangles) {
		t.Fatalf("expected ErrNoTriangles, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("partial file should be removed, stat: %v", err)
	}
}

func TestReadRoll(t *testing.T) {
	var buf bytes.Buffer
	roll, err := readRoll(&buf, []string{"1,0,0:90", "0,0,1:90"})
	if err != nil {
		t.Fatalf("readRoll failed: %v", err)
	}

	if got := roll.String(); got != "Roll: 3 + 5" {
		t.Errorf("expected %q, got %q", "Roll: 3 + 5", got)
	}
	if roll.Total() != 8 {
		t.Errorf("expected total 8, got %d", roll.Total())
	}
	out := buf.String()
	if !strings.Contains(out, "-> 3 (front)") || !strings.Contains(out, "-> 5 (right)") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if _, err := readRoll(&buf, []string{"1,0,0"}); err == nil {
		t.Error("expected error for malformed rotation")
	}
}

func TestSaveConfig(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("config dir override via XDG_CONFIG_HOME is linux only")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := config.Default()
	cfg.Die.Threshold = 0.8

	explicit := filepath.Join(t.TempDir(), "nested", config.FileName)
	path, err := saveConfig(cfg, explicit)
	if err != nil {
		t.Fatalf("saveConfig failed: %v", err)
	}
	if path != explicit {
		t.Errorf("expected %s, got %s", explicit, path)
	}

	path, err = saveConfig(cfg, "")
	if err != nil {
		t.Fatalf("saveConfig to config dir failed: %v", err)
	}
	if want := filepath.Join(config.ConfigDir(), config.FileName); path != want {
		t.Errorf("expected %s, got %s", want, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved config: %v", err)
	}
	if !strings.Contains(string(data), "threshold: 0.8") {
		t.Errorf("saved config missing threshold:\n%s", data)
	}
}
