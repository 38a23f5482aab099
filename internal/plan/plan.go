// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package plan converts resolved edit intents into ordered per-entity
// operation lists and drives one apply invocation end to end.
package plan

import (
	"github.com/jeranaias/madjust-tui/internal/intent"
	"github.com/jeranaias/madjust-tui/internal/model"
)

// =============================================================================
// OPERATIONS
// =============================================================================

// OpKind says what an operation's entity reference points at.
type OpKind int

const (
	// OpObject - a whole-object edit
	OpObject OpKind = iota

	// OpMeshPoint - one mesh vertex coordinate edit
	OpMeshPoint

	// OpCurvePoint - one curve point coordinate/attribute edit
	OpCurvePoint
)

// String returns the display name of the op kind.
func (k OpKind) String() string {
	switch k {
	case OpObject:
		return "object"
	case OpMeshPoint:
		return "mesh point"
	case OpCurvePoint:
		return "curve point"
	default:
		return "unknown"
	}
}

// Operation is one concrete edit against one entity. Entity references
// are opaque to this package; the executor owns the actual math.
type Operation struct {
	// Kind selects the entity class
	Kind OpKind

	// Entity is the opaque entity reference
	Entity string

	// Category is the transform category (object ops only)
	Category model.Category

	// Space is the coordinate frame the values apply in
	Space model.Space

	// Axes holds the components to set; unset axes stay untouched
	Axes model.AxisValueSet

	// Point is the vertex/point index for mesh and curve ops
	Point int

	// Attrs are curve point attribute values (curve ops only)
	Attrs intent.AttrSet

	// Viewport and Render are visibility overrides (object ops only)
	Viewport model.OptFlag
	Render   model.OptFlag
}

// EditPlan is the ordered operation list for one apply invocation. It is
// handed to the executor once and never retained.
type EditPlan struct {
	Ops []Operation
}

// Empty reports whether the plan carries no operations.
func (p EditPlan) Empty() bool {
	return len(p.Ops) == 0
}

// =============================================================================
// SELECTION SNAPSHOT
// =============================================================================

// Selection is the read-only selection snapshot the dispatcher consumes,
// supplied by the scene collaborator at the start of an invocation.
type Selection struct {
	// Mode is the current execution context
	Mode model.Mode

	// Objects are the selected object references (object mode)
	Objects []string

	// Mesh is the active mesh selection (edit-mesh mode), nil otherwise
	Mesh *MeshSelection

	// Curve is the active curve selection (edit-curve mode), nil otherwise
	Curve *CurveSelection
}

// MeshSelection describes the active mesh's selection state.
type MeshSelection struct {
	// Entity is the mesh object's reference
	Entity string

	// SelectMode is the active element select mode, used for Auto targets
	SelectMode model.SelectMode

	// Verts are the selected vertex indices
	Verts []int

	// Edges are the selected edges as vertex index pairs
	Edges [][2]int

	// Faces are the selected faces as vertex index rings
	Faces [][]int
}

// CurveSelection describes the active curve's selected point indices.
type CurveSelection struct {
	// Entity is the curve object's reference
	Entity string

	// Points are the selected point indices
	Points []int
}
