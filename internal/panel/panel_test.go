// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package panel

import (
	"testing"

	"github.com/jeranaias/madjust-tui/internal/model"
)

func TestDefaultMatchesPanelDefaults(t *testing.T) {
	s := Default()
	if s.Category != model.CategoryRotation {
		t.Errorf("category = %v", s.Category)
	}
	if s.WeightValue != 1 || s.RadiusValue != 1 {
		t.Errorf("attr defaults = %v, %v", s.WeightValue, s.RadiusValue)
	}
	if s.AxisValues().Any() {
		t.Error("no axis should be enabled by default")
	}
}

func TestSnapshotIsValueCopy(t *testing.T) {
	s := Default()
	snap := s.Snapshot()
	s.XEnable = true
	s.XValue = 9
	if snap.XEnable {
		t.Error("snapshot tracked a later mutation")
	}
}

func TestAxisValuesOnlyEnabled(t *testing.T) {
	s := Default()
	s.XEnable = true
	s.XValue = 1
	s.ZValue = 5 // value set but not enabled

	set := s.AxisValues()
	if _, ok := set.Get(model.AxisX); !ok {
		t.Error("X missing")
	}
	if _, ok := set.Get(model.AxisZ); ok {
		t.Error("disabled Z leaked")
	}
}

func TestVisibility(t *testing.T) {
	s := Default()
	s.VisApplyRender = true
	s.VisRenderHide = true
	s.VisViewportHide = true // hide without apply

	viewport, render := s.Visibility()
	if viewport.Set {
		t.Error("viewport must stay unset without its apply toggle")
	}
	if !render.Set || !render.Value {
		t.Errorf("render = %+v", render)
	}
}

func TestSpaceFor(t *testing.T) {
	s := Default()
	s.ObjectSpace = model.SpaceGlobal
	s.MeshSpace = model.SpaceLocal

	if s.SpaceFor(model.ModeObject) != model.SpaceGlobal {
		t.Error("object space")
	}
	if s.SpaceFor(model.ModeEditMesh) != model.SpaceLocal {
		t.Error("mesh space")
	}
	if s.SpaceFor(model.ModeEditCurve) != model.SpaceLocal {
		t.Error("curve space")
	}
}
