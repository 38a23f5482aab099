// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package intent

import (
	"testing"

	"github.com/jeranaias/madjust-tui/internal/command"
	"github.com/jeranaias/madjust-tui/internal/diag"
	"github.com/jeranaias/madjust-tui/internal/model"
	"github.com/jeranaias/madjust-tui/internal/panel"
)

// classify parses a command line into assignments, failing the test on
// any parse error.
func classify(t *testing.T, line string) []command.Assignment {
	t.Helper()
	tokens, terrs := command.Tokenize(line)
	if len(terrs) != 0 {
		t.Fatalf("%q: tokenize errors: %v", line, terrs)
	}
	asgs, cerrs := command.ClassifyAll(tokens)
	if len(cerrs) != 0 {
		t.Fatalf("%q: classify errors: %v", line, cerrs)
	}
	return asgs
}

func resolve(t *testing.T, line string, snap panel.State, mode model.Mode) (Intent, []diag.Notice) {
	t.Helper()
	return Resolve(Build(snap, classify(t, line), mode))
}

func TestResolveUnmentionedAxesStayUnset(t *testing.T) {
	snap := panel.Default()
	snap.Category = model.CategoryLocation

	in, notices := resolve(t, "x=0 z=2", snap, model.ModeObject)
	if len(notices) != 0 {
		t.Fatalf("unexpected notices: %v", notices)
	}
	if in.Category != model.CategoryLocation {
		t.Errorf("category = %v", in.Category)
	}
	if x, ok := in.Axes.Get(model.AxisX); !ok || x.Value != 0 {
		t.Errorf("X = %+v", x)
	}
	if _, ok := in.Axes.Get(model.AxisY); ok {
		t.Error("Y must stay unset")
	}
	if z, ok := in.Axes.Get(model.AxisZ); !ok || z.Value != 2 {
		t.Errorf("Z = %+v", z)
	}
}

func TestResolvePriorityChain(t *testing.T) {
	tests := []struct {
		line   string
		winner model.Category
		drops  int
	}{
		{"rx=45 sx=2", model.CategoryRotation, 1},
		{"sx=2 ox=1", model.CategoryScale, 1},
		{"ox=1 loc.x=5", model.CategoryOrigin, 1},
		{"loc.x=5", model.CategoryLocation, 0},
		{"rx=45 sy=2 oz=1 loc.x=5", model.CategoryRotation, 3},
	}
	for _, tt := range tests {
		in, notices := resolve(t, tt.line, panel.Default(), model.ModeObject)
		if in.Category != tt.winner {
			t.Errorf("%q: winner = %v, want %v", tt.line, in.Category, tt.winner)
		}
		drops := 0
		for _, n := range notices {
			if n.Kind == diag.KindSupersededCategory {
				drops++
			}
		}
		if drops != tt.drops {
			t.Errorf("%q: %d superseded notices, want %d", tt.line, drops, tt.drops)
		}
	}
}

func TestResolveSupersededAxesDropped(t *testing.T) {
	in, _ := resolve(t, "rx=45 sx=2", panel.Default(), model.ModeObject)
	if x, ok := in.Axes.Get(model.AxisX); !ok || x.Value != 45 {
		t.Errorf("X = %+v, want the rotation value", x)
	}
	if in.Axes.Count() != 1 {
		t.Errorf("axes count = %d, want only the winner's", in.Axes.Count())
	}
}

func TestResolveSpaceDowngrade(t *testing.T) {
	for _, line := range []string{"rx=45 space=global", "sx=2 space=world"} {
		in, notices := resolve(t, line, panel.Default(), model.ModeObject)
		if in.Space != model.SpaceLocal {
			t.Errorf("%q: space = %v, want Local", line, in.Space)
		}
		found := false
		for _, n := range notices {
			if n.Kind == diag.KindSpaceDowngrade {
				found = true
			}
		}
		if !found {
			t.Errorf("%q: missing downgrade notice", line)
		}
	}

	// Location keeps the requested global frame.
	in, notices := resolve(t, "loc.x=5 space=global", panel.Default(), model.ModeObject)
	if in.Space != model.SpaceGlobal {
		t.Errorf("location space = %v, want Global", in.Space)
	}
	if len(notices) != 0 {
		t.Errorf("unexpected notices: %v", notices)
	}
}

func TestResolveRadiansCarriedNotConverted(t *testing.T) {
	in, _ := resolve(t, "ry=1.57rad", panel.Default(), model.ModeObject)
	y, ok := in.Axes.Get(model.AxisY)
	if !ok {
		t.Fatal("Y unset")
	}
	if y.Value != 1.57 || y.Unit != model.UnitRadians {
		t.Errorf("Y = %+v, want raw radians carried through", y)
	}
}

func TestResolvePanelMergeSameCategoryOnly(t *testing.T) {
	snap := panel.Default()
	snap.Category = model.CategoryRotation
	snap.ZEnable = true
	snap.ZValue = 90

	// Command on the panel's own tab: panel Z fills in.
	in, _ := resolve(t, "rx=45", snap, model.ModeObject)
	if z, ok := in.Axes.Get(model.AxisZ); !ok || z.Value != 90 {
		t.Errorf("Z = %+v, want panel value merged", z)
	}
	if x, ok := in.Axes.Get(model.AxisX); !ok || x.Value != 45 {
		t.Errorf("X = %+v, command value must win", x)
	}

	// Command on a different tab: the panel's rotation Z stays out.
	in, _ = resolve(t, "sx=2", snap, model.ModeObject)
	if _, ok := in.Axes.Get(model.AxisZ); ok {
		t.Error("panel axis from another tab leaked into the intent")
	}
}

func TestResolvePanelFallback(t *testing.T) {
	snap := panel.Default()
	snap.Category = model.CategoryScale
	snap.XEnable = true
	snap.XValue = 2

	// No category tokens at all: the panel tab applies.
	in, _ := resolve(t, "space=local", snap, model.ModeObject)
	if in.Category != model.CategoryScale {
		t.Errorf("category = %v, want panel tab", in.Category)
	}
	if x, ok := in.Axes.Get(model.AxisX); !ok || x.Value != 2 {
		t.Errorf("X = %+v", x)
	}
}

func TestResolveMeshCoords(t *testing.T) {
	snap := panel.Default()
	snap.YEnable = true
	snap.YValue = 7

	in, _ := resolve(t, "x=0 target=faces", snap, model.ModeEditMesh)
	if in.Category != model.CategoryNone {
		t.Errorf("category = %v, want None for coordinate edits", in.Category)
	}
	if in.Target != model.TargetFaces {
		t.Errorf("target = %v", in.Target)
	}
	if x, ok := in.Axes.Get(model.AxisX); !ok || x.Value != 0 {
		t.Errorf("X = %+v", x)
	}
	if y, ok := in.Axes.Get(model.AxisY); !ok || y.Value != 7 {
		t.Errorf("Y = %+v, want panel coordinate merged", y)
	}
}

func TestResolveObjectTransformInMeshMode(t *testing.T) {
	// Category-tagged tokens in mesh mode survive as a tagged intent;
	// the dispatcher rejects it as a context mismatch.
	in, _ := resolve(t, "rx=45", panel.Default(), model.ModeEditMesh)
	if in.Category != model.CategoryRotation {
		t.Errorf("category = %v, want Rotation carried for the dispatcher to reject", in.Category)
	}
}

func TestResolveCurveAttrs(t *testing.T) {
	snap := panel.Default()
	snap.TiltEnable = true
	snap.TiltValue = 15

	in, _ := resolve(t, "weight=0.5 x=1", snap, model.ModeEditCurve)
	if w, ok := in.Attrs.Get(model.AttrWeight); !ok || w.Value != 0.5 {
		t.Errorf("weight = %+v", w)
	}
	if tilt, ok := in.Attrs.Get(model.AttrTilt); !ok || tilt.Value != 15 {
		t.Errorf("tilt = %+v, want panel attribute merged", tilt)
	}
	if _, ok := in.Attrs.Get(model.AttrRadius); ok {
		t.Error("radius must stay unset")
	}
}

func TestResolveVisibilityObjectModeOnly(t *testing.T) {
	snap := panel.Default()
	snap.VisApplyViewport = true
	snap.VisViewportHide = true

	in, _ := resolve(t, "loc.x=1", snap, model.ModeObject)
	if !in.Viewport.Set || !in.Viewport.Value {
		t.Errorf("viewport = %+v", in.Viewport)
	}
	if in.Render.Set {
		t.Error("render must stay unset without its apply toggle")
	}

	in, _ = resolve(t, "x=1", snap, model.ModeEditMesh)
	if in.Viewport.Set {
		t.Error("visibility must not apply in mesh mode")
	}
}

func TestResolveDirectivesOverrideAmbient(t *testing.T) {
	snap := panel.Default()
	snap.MeshSpace = model.SpaceLocal
	snap.Target = model.TargetVerts

	in, _ := resolve(t, "x=1 space=global target=edges", snap, model.ModeEditMesh)
	if in.Space != model.SpaceGlobal {
		t.Errorf("space = %v", in.Space)
	}
	if in.Target != model.TargetEdges {
		t.Errorf("target = %v", in.Target)
	}
}

func TestIntentEmpty(t *testing.T) {
	var in Intent
	if !in.Empty() {
		t.Error("zero intent must be empty")
	}
	in.Axes.Put(model.AxisX, 1, model.UnitDefault)
	if in.Empty() {
		t.Error("intent with an axis is not empty")
	}

	var vis Intent
	vis.Render = model.OptFlag{Set: true, Value: true}
	if vis.Empty() {
		t.Error("visibility-only intent is not empty")
	}
}
