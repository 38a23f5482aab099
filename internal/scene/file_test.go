// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jeranaias/madjust-tui/internal/model"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	sc := Demo()
	sc.Mode = model.ModeEditMesh
	sc.SelectMode = model.SelectFaces
	sc.FindName("Cube").RotationDeg = model.Vec3{X: 45}

	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := Save(path, sc); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Mode != model.ModeEditMesh || loaded.SelectMode != model.SelectFaces {
		t.Errorf("mode = %v, select = %v", loaded.Mode, loaded.SelectMode)
	}
	if len(loaded.Objects) != 3 {
		t.Fatalf("%d objects", len(loaded.Objects))
	}

	cube := loaded.FindName("Cube")
	if cube == nil || cube.RotationDeg.X != 45 {
		t.Errorf("cube = %+v", cube)
	}
	if cube.Mesh == nil || len(cube.Mesh.Verts) != 8 || len(cube.Mesh.Edges) != 12 {
		t.Errorf("mesh = %+v", cube.Mesh)
	}
	if loaded.ActiveObject() == nil || loaded.ActiveObject().Name != "Cube" {
		t.Errorf("active = %v", loaded.Active)
	}

	bez := loaded.FindName("BezierCircle")
	if bez == nil || bez.Curve == nil || len(bez.Curve.Points) != 4 {
		t.Fatalf("curve = %+v", bez)
	}
	if !bez.Curve.Points[0].Selected || bez.Curve.Points[2].Selected {
		t.Error("point selection lost")
	}
}

func TestLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	data := `
[[objects]]
name = "Thing"
selected = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	sc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Mode != model.ModeObject {
		t.Errorf("mode = %v", sc.Mode)
	}
	obj := sc.Objects[0]
	if obj.Scale != (model.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("scale = %+v, want unit default", obj.Scale)
	}
	if sc.Active != obj.ID {
		t.Error("first object should become active by default")
	}
}

func TestLoadRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad mode", `mode = "sculpt"`},
		{"bad select mode", `select_mode = "loops"`},
		{"bad vec3", "[[objects]]\nname = \"X\"\nlocation = [1.0, 2.0]"},
		{"bad edge", "[[objects]]\nname = \"X\"\n[objects.mesh]\nverts = [[0.0,0.0,0.0]]\nedges = [[0]]"},
		{"missing active", "active = \"Ghost\"\n[[objects]]\nname = \"X\""},
	}
	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "scene.toml")
		if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: want error", tt.name)
		}
	}
}
