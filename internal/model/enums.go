// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the shared domain types for batch transform edits.
package model

import "strings"

// =============================================================================
// AXIS
// =============================================================================

// Axis identifies one component of a three-axis value.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the lowercase axis letter.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Axes lists all axes in canonical X, Y, Z order.
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

// =============================================================================
// TRANSFORM CATEGORY
// =============================================================================

// Category is the transform category an edit applies to. Exactly one
// category (or none) survives resolution per invocation.
type Category int

const (
	// CategoryNone - no object transform; mesh/curve coordinate edits
	// and visibility-only invocations carry this
	CategoryNone Category = iota

	CategoryLocation
	CategoryRotation
	CategoryScale
	CategoryOrigin
)

// String returns the display name of the category.
func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "None"
	case CategoryLocation:
		return "Location"
	case CategoryRotation:
		return "Rotation"
	case CategoryScale:
		return "Scale"
	case CategoryOrigin:
		return "Origin"
	default:
		return "Unknown"
	}
}

// Precedence returns the conflict-resolution rank of the category.
// Higher wins: Rotation > Scale > Origin > Location.
func (c Category) Precedence() int {
	switch c {
	case CategoryRotation:
		return 4
	case CategoryScale:
		return 3
	case CategoryOrigin:
		return 2
	case CategoryLocation:
		return 1
	default:
		return 0
	}
}

// =============================================================================
// SPACE
// =============================================================================

// Space is the coordinate frame a value is interpreted in.
type Space int

const (
	SpaceLocal Space = iota
	SpaceGlobal
)

// String returns the display name of the space.
func (s Space) String() string {
	if s == SpaceGlobal {
		return "Global"
	}
	return "Local"
}

// ParseSpace parses a space directive value. "global" and "world" are
// synonyms, case-insensitive.
func ParseSpace(v string) (Space, bool) {
	switch strings.ToLower(v) {
	case "local":
		return SpaceLocal, true
	case "global", "world":
		return SpaceGlobal, true
	default:
		return SpaceLocal, false
	}
}

// =============================================================================
// MESH TARGET
// =============================================================================

// MeshTarget selects which class of mesh element a coordinate edit
// resolves against.
type MeshTarget int

const (
	// TargetAuto - follow the current mesh select mode
	TargetAuto MeshTarget = iota

	TargetVerts
	TargetEdges
	TargetFaces
)

// String returns the display name of the target.
func (t MeshTarget) String() string {
	switch t {
	case TargetAuto:
		return "Auto"
	case TargetVerts:
		return "Verts"
	case TargetEdges:
		return "Edges"
	case TargetFaces:
		return "Faces"
	default:
		return "Unknown"
	}
}

// ParseMeshTarget parses a target directive value. Accepts singular,
// plural, and single-letter forms, case-insensitive.
func ParseMeshTarget(v string) (MeshTarget, bool) {
	switch strings.ToLower(v) {
	case "auto":
		return TargetAuto, true
	case "vert", "verts", "v":
		return TargetVerts, true
	case "edge", "edges", "e":
		return TargetEdges, true
	case "face", "faces", "f":
		return TargetFaces, true
	default:
		return TargetAuto, false
	}
}

// =============================================================================
// VISIBILITY
// =============================================================================

// VisibilityChannel identifies one of the two per-object hide flags.
type VisibilityChannel int

const (
	VisViewport VisibilityChannel = iota
	VisRender
)

// String returns the display name of the channel.
func (v VisibilityChannel) String() string {
	if v == VisRender {
		return "Render"
	}
	return "Viewport"
}

// OptFlag is an optional boolean: Set says whether the flag participates
// in the edit at all, Value is the state to apply when it does.
type OptFlag struct {
	Set   bool
	Value bool
}

// =============================================================================
// EXECUTION CONTEXT
// =============================================================================

// Mode is the execution context an invocation runs in.
type Mode int

const (
	// ModeObject - whole-object edits on the selected objects
	ModeObject Mode = iota

	// ModeEditMesh - coordinate edits on the active mesh's points
	ModeEditMesh

	// ModeEditCurve - coordinate and attribute edits on curve points
	ModeEditCurve
)

// String returns the display name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeObject:
		return "Object"
	case ModeEditMesh:
		return "Edit Mesh"
	case ModeEditCurve:
		return "Edit Curve"
	default:
		return "Unknown"
	}
}

// SelectMode is the active mesh element selection mode, used when a
// target directive says Auto.
type SelectMode int

const (
	SelectVerts SelectMode = iota
	SelectEdges
	SelectFaces
)

// String returns the display name of the select mode.
func (m SelectMode) String() string {
	switch m {
	case SelectVerts:
		return "Verts"
	case SelectEdges:
		return "Edges"
	case SelectFaces:
		return "Faces"
	default:
		return "Unknown"
	}
}

// =============================================================================
// CURVE ATTRIBUTES
// =============================================================================

// CurveAttr is a per-point curve attribute settable in edit-curve context.
type CurveAttr int

const (
	AttrWeight CurveAttr = iota
	AttrRadius
	AttrTilt
)

// String returns the lowercase attribute name as used in commands.
func (a CurveAttr) String() string {
	switch a {
	case AttrWeight:
		return "weight"
	case AttrRadius:
		return "radius"
	case AttrTilt:
		return "tilt"
	default:
		return "?"
	}
}
