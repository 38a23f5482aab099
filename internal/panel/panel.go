// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package panel holds the ambient panel state the structured UI edits:
// the selected transform tab, per-axis enables and values, space and
// target choices, curve attribute toggles, and visibility flags.
//
// The engine never reads live panel state. Each invocation takes an
// immutable Snapshot at entry, so a UI update mid-invocation cannot
// change what gets applied.
package panel

import "github.com/jeranaias/madjust-tui/internal/model"

// =============================================================================
// STATE
// =============================================================================

// State mirrors the panel controls one-to-one. The UI mutates it between
// invocations; the engine only ever sees value copies.
type State struct {
	// Category is the selected transform tab
	Category model.Category

	// ObjectSpace applies to Location and Origin edits in object mode
	ObjectSpace model.Space

	// MeshSpace applies to coordinate edits in mesh and curve modes
	MeshSpace model.Space

	// Target is the mesh element class selector
	Target model.MeshTarget

	// Per-axis enables and values
	XEnable bool
	YEnable bool
	ZEnable bool
	XValue  float64
	YValue  float64
	ZValue  float64

	// Curve attribute toggles (edit-curve mode)
	WeightEnable bool
	WeightValue  float64
	RadiusEnable bool
	RadiusValue  float64
	TiltEnable   bool
	TiltValue    float64

	// Visibility batch toggles (object mode)
	VisApplyViewport bool
	VisViewportHide  bool
	VisApplyRender   bool
	VisRenderHide    bool

	// Command is the current command line text
	Command string
}

// Default returns the panel state matching the UI defaults.
func Default() State {
	return State{
		Category:    model.CategoryRotation,
		ObjectSpace: model.SpaceLocal,
		MeshSpace:   model.SpaceLocal,
		Target:      model.TargetAuto,
		WeightValue: 1,
		RadiusValue: 1,
	}
}

// Snapshot returns an immutable value copy for one invocation.
func (s *State) Snapshot() State {
	return *s
}

// =============================================================================
// DERIVED VIEWS
// =============================================================================

// AxisValues returns the enabled axes as an AxisValueSet. Disabled axes
// stay unset so nothing downstream touches them.
func (s State) AxisValues() model.AxisValueSet {
	var set model.AxisValueSet
	if s.XEnable {
		set.Put(model.AxisX, s.XValue, model.UnitDefault)
	}
	if s.YEnable {
		set.Put(model.AxisY, s.YValue, model.UnitDefault)
	}
	if s.ZEnable {
		set.Put(model.AxisZ, s.ZValue, model.UnitDefault)
	}
	return set
}

// AttrValue returns the panel value for a curve attribute, if enabled.
func (s State) AttrValue(a model.CurveAttr) model.OptValue {
	switch a {
	case model.AttrWeight:
		if s.WeightEnable {
			return model.OptValue{Set: true, Value: s.WeightValue}
		}
	case model.AttrRadius:
		if s.RadiusEnable {
			return model.OptValue{Set: true, Value: s.RadiusValue}
		}
	case model.AttrTilt:
		if s.TiltEnable {
			return model.OptValue{Set: true, Value: s.TiltValue}
		}
	}
	return model.OptValue{}
}

// Visibility returns the viewport and render overrides selected on the
// panel. A channel without its apply toggle stays unset.
func (s State) Visibility() (viewport, render model.OptFlag) {
	if s.VisApplyViewport {
		viewport = model.OptFlag{Set: true, Value: s.VisViewportHide}
	}
	if s.VisApplyRender {
		render = model.OptFlag{Set: true, Value: s.VisRenderHide}
	}
	return viewport, render
}

// SpaceFor returns the ambient space for the given mode.
func (s State) SpaceFor(mode model.Mode) model.Space {
	if mode == model.ModeObject {
		return s.ObjectSpace
	}
	return s.MeshSpace
}
