// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package plan converts resolved edit intents into ordered per-entity
// operation lists and drives one apply invocation end to end.
package plan

import (
	"sort"

	"github.com/jeranaias/madjust-tui/internal/diag"
	"github.com/jeranaias/madjust-tui/internal/intent"
	"github.com/jeranaias/madjust-tui/internal/model"
)

// =============================================================================
// DISPATCHER
// =============================================================================

// Dispatch turns a resolved intent plus a selection snapshot into an
// edit plan. A non-None reason means the invocation is rejected and the
// returned plan is empty.
func Dispatch(in intent.Intent, sel Selection) (EditPlan, diag.Reason) {
	switch in.Mode {
	case model.ModeObject:
		return dispatchObjects(in, sel)
	case model.ModeEditMesh:
		return dispatchMesh(in, sel)
	case model.ModeEditCurve:
		return dispatchCurve(in, sel)
	default:
		return EditPlan{}, diag.ReasonWrongContext
	}
}

// dispatchObjects emits one operation per selected object.
func dispatchObjects(in intent.Intent, sel Selection) (EditPlan, diag.Reason) {
	if sel.Mode != model.ModeObject {
		return EditPlan{}, diag.ReasonWrongContext
	}
	if len(sel.Objects) == 0 {
		return EditPlan{}, diag.ReasonNoSelection
	}
	if in.Empty() {
		return EditPlan{}, diag.ReasonNoAxisEnabled
	}

	var plan EditPlan
	for _, obj := range sel.Objects {
		plan.Ops = append(plan.Ops, Operation{
			Kind:     OpObject,
			Entity:   obj,
			Category: in.Category,
			Space:    in.Space,
			Axes:     in.Axes,
			Viewport: in.Viewport,
			Render:   in.Render,
		})
	}
	return plan, diag.ReasonNone
}

// dispatchMesh resolves the target point set, then emits one operation
// per resolved vertex.
func dispatchMesh(in intent.Intent, sel Selection) (EditPlan, diag.Reason) {
	if in.Category != model.CategoryNone {
		// An object transform was requested while editing a mesh.
		return EditPlan{}, diag.ReasonWrongContext
	}
	if sel.Mode != model.ModeEditMesh || sel.Mesh == nil {
		return EditPlan{}, diag.ReasonWrongContext
	}

	verts := resolveMeshVerts(in.Target, sel.Mesh)
	if len(verts) == 0 {
		return EditPlan{}, diag.ReasonNoPoints
	}
	if !in.Axes.Any() {
		return EditPlan{}, diag.ReasonNoAxisEnabled
	}

	var plan EditPlan
	for _, v := range verts {
		plan.Ops = append(plan.Ops, Operation{
			Kind:   OpMeshPoint,
			Entity: sel.Mesh.Entity,
			Space:  in.Space,
			Axes:   in.Axes,
			Point:  v,
		})
	}
	return plan, diag.ReasonNone
}

// dispatchCurve emits one operation per selected curve point, carrying
// coordinate values and attribute values together.
func dispatchCurve(in intent.Intent, sel Selection) (EditPlan, diag.Reason) {
	if in.Category != model.CategoryNone {
		return EditPlan{}, diag.ReasonWrongContext
	}
	if sel.Mode != model.ModeEditCurve || sel.Curve == nil {
		return EditPlan{}, diag.ReasonWrongContext
	}

	points := append([]int(nil), sel.Curve.Points...)
	sort.Ints(points)
	if len(points) == 0 {
		return EditPlan{}, diag.ReasonNoPoints
	}
	if !in.Axes.Any() && !in.Attrs.Any() {
		return EditPlan{}, diag.ReasonNoAxisEnabled
	}

	var plan EditPlan
	for _, p := range points {
		plan.Ops = append(plan.Ops, Operation{
			Kind:   OpCurvePoint,
			Entity: sel.Curve.Entity,
			Space:  in.Space,
			Axes:   in.Axes,
			Point:  p,
			Attrs:  in.Attrs,
		})
	}
	return plan, diag.ReasonNone
}

// =============================================================================
// TARGET RESOLUTION
// =============================================================================

// resolveMeshVerts maps the mesh target to a deduplicated, ascending
// vertex index list. Auto follows the active select mode; explicit
// targets force their resolution regardless of it.
func resolveMeshVerts(target model.MeshTarget, ms *MeshSelection) []int {
	if target == model.TargetAuto {
		switch ms.SelectMode {
		case model.SelectEdges:
			target = model.TargetEdges
		case model.SelectFaces:
			target = model.TargetFaces
		default:
			target = model.TargetVerts
		}
	}

	seen := make(map[int]bool)
	switch target {
	case model.TargetVerts:
		for _, v := range ms.Verts {
			seen[v] = true
		}
	case model.TargetEdges:
		for _, e := range ms.Edges {
			seen[e[0]] = true
			seen[e[1]] = true
		}
	case model.TargetFaces:
		for _, f := range ms.Faces {
			for _, v := range f {
				seen[v] = true
			}
		}
	}

	verts := make([]int, 0, len(seen))
	for v := range seen {
		verts = append(verts, v)
	}
	sort.Ints(verts)
	return verts
}
