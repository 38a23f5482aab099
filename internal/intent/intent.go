// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package intent turns classified command assignments plus a panel
// snapshot into a single resolved edit intent.
package intent

import (
	"github.com/jeranaias/madjust-tui/internal/command"
	"github.com/jeranaias/madjust-tui/internal/model"
	"github.com/jeranaias/madjust-tui/internal/panel"
)

// =============================================================================
// ATTRIBUTE SET
// =============================================================================

// AttrSet holds the optional curve point attribute values of an intent.
type AttrSet struct {
	Weight model.OptValue
	Radius model.OptValue
	Tilt   model.OptValue
}

// Put records a value for the given attribute.
func (s *AttrSet) Put(a model.CurveAttr, value float64) {
	v := model.OptValue{Set: true, Value: value}
	switch a {
	case model.AttrWeight:
		s.Weight = v
	case model.AttrRadius:
		s.Radius = v
	case model.AttrTilt:
		s.Tilt = v
	}
}

// Get returns the value for the given attribute and whether it is set.
func (s AttrSet) Get(a model.CurveAttr) (model.OptValue, bool) {
	switch a {
	case model.AttrWeight:
		return s.Weight, s.Weight.Set
	case model.AttrRadius:
		return s.Radius, s.Radius.Set
	case model.AttrTilt:
		return s.Tilt, s.Tilt.Set
	default:
		return model.OptValue{}, false
	}
}

// Any reports whether at least one attribute is set.
func (s AttrSet) Any() bool {
	return s.Weight.Set || s.Radius.Set || s.Tilt.Set
}

// merge fills unset attributes from other.
func (s AttrSet) merge(other AttrSet) AttrSet {
	out := s
	if !out.Weight.Set {
		out.Weight = other.Weight
	}
	if !out.Radius.Set {
		out.Radius = other.Radius
	}
	if !out.Tilt.Set {
		out.Tilt = other.Tilt
	}
	return out
}

// =============================================================================
// INTENT
// =============================================================================

// Intent is the resolved, single-category description of what to change.
// It is built fresh per invocation and never persisted.
type Intent struct {
	// Mode is the execution context the intent was built for
	Mode model.Mode

	// Category is the surviving transform category. CategoryNone for
	// mesh/curve coordinate edits and visibility-only invocations.
	Category model.Category

	// Space is the coordinate frame, after any downgrade
	Space model.Space

	// Target is the mesh element class selector
	Target model.MeshTarget

	// Axes holds the values to set; unset axes are never touched
	Axes model.AxisValueSet

	// Attrs holds curve point attribute values (edit-curve mode)
	Attrs AttrSet

	// Viewport and Render are the visibility overrides
	Viewport model.OptFlag
	Render   model.OptFlag
}

// Empty reports whether the intent changes nothing: no axis values, no
// attributes and no visibility flags.
func (i Intent) Empty() bool {
	return !i.Axes.Any() && !i.Attrs.Any() && !i.Viewport.Set && !i.Render.Set
}

// =============================================================================
// DRAFT
// =============================================================================

// Draft is the merged-but-unresolved form of an intent: the builder's
// output, holding possibly conflicting category assignments for the
// resolver to arbitrate.
type Draft struct {
	Mode   model.Mode
	Space  model.Space
	Target model.MeshTarget

	// Tagged are the category-carrying axis assignments in command
	// order; bare axes in object context appear here tagged Location.
	Tagged []command.Assignment

	// Coords are bare axis values in mesh/curve context
	Coords model.AxisValueSet

	// Attrs are command-supplied curve attributes
	Attrs AttrSet

	// Panel is the snapshot ambient state
	Panel panel.State
}

// Build merges the panel snapshot with classified command assignments.
// Directives override the ambient space/target; axis assignments are
// collected for the resolver; bare axes resolve their category from the
// execution context (Location in object mode, raw coordinate otherwise).
func Build(snap panel.State, asgs []command.Assignment, mode model.Mode) Draft {
	d := Draft{
		Mode:   mode,
		Space:  snap.SpaceFor(mode),
		Target: snap.Target,
		Panel:  snap,
	}

	for _, a := range asgs {
		switch a.Kind {
		case command.AssignSpace:
			d.Space = a.Space

		case command.AssignTarget:
			d.Target = a.Target

		case command.AssignCurveAttr:
			d.Attrs.Put(a.Attr, a.Value)

		case command.AssignAxis:
			if a.Bare && mode != model.ModeObject {
				d.Coords.Put(a.Axis, a.Value, a.Unit)
				continue
			}
			if a.Bare {
				a.Category = model.CategoryLocation
			}
			d.Tagged = append(d.Tagged, a)
		}
	}
	return d
}
