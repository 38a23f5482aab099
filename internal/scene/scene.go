// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package scene is the in-memory scene the engine's plans execute against.
package scene

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jeranaias/madjust-tui/internal/model"
	"github.com/jeranaias/madjust-tui/internal/plan"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrUnknownEntity - a plan operation names an entity not in the scene
	ErrUnknownEntity = errors.New("unknown entity")

	// ErrNoMesh - a mesh point operation hit an object without mesh data
	ErrNoMesh = errors.New("object has no mesh")

	// ErrNoCurve - a curve point operation hit an object without curve data
	ErrNoCurve = errors.New("object has no curve")

	// ErrPointRange - a point index is out of range
	ErrPointRange = errors.New("point index out of range")
)

// =============================================================================
// SCENE DATA
// =============================================================================

// CurvePoint is one control point of a curve.
type CurvePoint struct {
	Co       model.Vec3
	Weight   float64
	Radius   float64
	Tilt     float64
	Selected bool
}

// Curve holds editable curve data.
type Curve struct {
	Points []CurvePoint
}

// Mesh holds editable mesh data. Edges and faces are vertex index pairs
// and rings; selections are indices into the respective element lists.
type Mesh struct {
	Verts []model.Vec3
	Edges [][2]int
	Faces [][]int

	SelectedVerts []int
	SelectedEdges []int
	SelectedFaces []int
}

// Object is one scene entity. World position is ParentOffset + Location;
// that is the whole space model here, by scope.
type Object struct {
	ID   string
	Name string

	Location     model.Vec3
	RotationDeg  model.Vec3
	Scale        model.Vec3
	ParentOffset model.Vec3

	HideViewport bool
	HideRender   bool
	Selected     bool

	Mesh  *Mesh
	Curve *Curve
}

// World returns the object's world-space position.
func (o *Object) World() model.Vec3 {
	return o.ParentOffset.Add(o.Location)
}

// Scene is the full scene state plus the current execution context.
type Scene struct {
	Mode       model.Mode
	SelectMode model.SelectMode
	Objects    []*Object

	// Active is the object being edited in mesh/curve modes
	Active string
}

// New returns an empty object-mode scene.
func New() *Scene {
	return &Scene{Mode: model.ModeObject}
}

// NewObject returns an object with a fresh ID and unit scale.
func NewObject(name string) *Object {
	return &Object{
		ID:    uuid.New().String(),
		Name:  name,
		Scale: model.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// Find returns the object with the given ID.
func (s *Scene) Find(id string) *Object {
	for _, o := range s.Objects {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// FindName returns the first object with the given name.
func (s *Scene) FindName(name string) *Object {
	for _, o := range s.Objects {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// ActiveObject returns the object being edited, or nil.
func (s *Scene) ActiveObject() *Object {
	return s.Find(s.Active)
}

// SelectedCount returns how many objects are selected.
func (s *Scene) SelectedCount() int {
	n := 0
	for _, o := range s.Objects {
		if o.Selected {
			n++
		}
	}
	return n
}

// =============================================================================
// SELECTION PROVIDER
// =============================================================================

// Selection snapshots the current selection for one invocation. The
// returned value shares nothing mutable with the scene.
func (s *Scene) Selection() plan.Selection {
	sel := plan.Selection{Mode: s.Mode}

	switch s.Mode {
	case model.ModeObject:
		for _, o := range s.Objects {
			if o.Selected {
				sel.Objects = append(sel.Objects, o.ID)
			}
		}

	case model.ModeEditMesh:
		obj := s.ActiveObject()
		if obj == nil || obj.Mesh == nil {
			return sel
		}
		ms := &plan.MeshSelection{
			Entity:     obj.ID,
			SelectMode: s.SelectMode,
			Verts:      append([]int(nil), obj.Mesh.SelectedVerts...),
		}
		for _, ei := range obj.Mesh.SelectedEdges {
			if ei >= 0 && ei < len(obj.Mesh.Edges) {
				ms.Edges = append(ms.Edges, obj.Mesh.Edges[ei])
			}
		}
		for _, fi := range obj.Mesh.SelectedFaces {
			if fi >= 0 && fi < len(obj.Mesh.Faces) {
				ms.Faces = append(ms.Faces, append([]int(nil), obj.Mesh.Faces[fi]...))
			}
		}
		sel.Mesh = ms

	case model.ModeEditCurve:
		obj := s.ActiveObject()
		if obj == nil || obj.Curve == nil {
			return sel
		}
		cs := &plan.CurveSelection{Entity: obj.ID}
		for i, p := range obj.Curve.Points {
			if p.Selected {
				cs.Points = append(cs.Points, i)
			}
		}
		sel.Curve = cs
	}
	return sel
}

// =============================================================================
// EXECUTOR
// =============================================================================

// Apply executes an edit plan against the scene. The plan is validated
// up front so a bad operation leaves the scene untouched rather than
// half-applied.
func (s *Scene) Apply(p plan.EditPlan) error {
	for i, op := range p.Ops {
		if err := s.check(op); err != nil {
			return fmt.Errorf("op %d: %w", i, err)
		}
	}
	for _, op := range p.Ops {
		s.apply(op)
	}
	return nil
}

// check validates one operation without mutating anything.
func (s *Scene) check(op plan.Operation) error {
	obj := s.Find(op.Entity)
	if obj == nil {
		return ErrUnknownEntity
	}
	switch op.Kind {
	case plan.OpMeshPoint:
		if obj.Mesh == nil {
			return ErrNoMesh
		}
		if op.Point < 0 || op.Point >= len(obj.Mesh.Verts) {
			return ErrPointRange
		}
	case plan.OpCurvePoint:
		if obj.Curve == nil {
			return ErrNoCurve
		}
		if op.Point < 0 || op.Point >= len(obj.Curve.Points) {
			return ErrPointRange
		}
	}
	return nil
}

// apply executes one pre-validated operation.
func (s *Scene) apply(op plan.Operation) {
	obj := s.Find(op.Entity)

	switch op.Kind {
	case plan.OpObject:
		s.applyObject(obj, op)

	case plan.OpMeshPoint:
		co := obj.Mesh.Verts[op.Point]
		obj.Mesh.Verts[op.Point] = setCoord(co, obj, op)

	case plan.OpCurvePoint:
		pt := &obj.Curve.Points[op.Point]
		if op.Axes.Any() {
			pt.Co = setCoord(pt.Co, obj, op)
		}
		if v, ok := op.Attrs.Get(model.AttrWeight); ok {
			pt.Weight = v.Value
		}
		if v, ok := op.Attrs.Get(model.AttrRadius); ok {
			pt.Radius = v.Value
		}
		if v, ok := op.Attrs.Get(model.AttrTilt); ok {
			pt.Tilt = v.Value
		}
	}
}

// applyObject executes a whole-object operation.
func (s *Scene) applyObject(obj *Object, op plan.Operation) {
	switch op.Category {
	case model.CategoryLocation:
		obj.Location = setTranslation(obj, op)

	case model.CategoryRotation:
		for _, a := range model.Axes {
			if v, ok := op.Axes.Get(a); ok {
				obj.RotationDeg.SetComponent(a, v.Degrees())
			}
		}

	case model.CategoryScale:
		for _, a := range model.Axes {
			if v, ok := op.Axes.Get(a); ok {
				obj.Scale.SetComponent(a, v.Value)
			}
		}

	case model.CategoryOrigin:
		moveOrigin(obj, op)
	}

	if op.Viewport.Set {
		obj.HideViewport = op.Viewport.Value
	}
	if op.Render.Set {
		obj.HideRender = op.Render.Value
	}
}

// setTranslation computes the new location for a location edit in the
// operation's space.
func setTranslation(obj *Object, op plan.Operation) model.Vec3 {
	if op.Space == model.SpaceGlobal {
		world := obj.World()
		for _, a := range model.Axes {
			if v, ok := op.Axes.Get(a); ok {
				world.SetComponent(a, v.Value)
			}
		}
		return world.Sub(obj.ParentOffset)
	}
	loc := obj.Location
	for _, a := range model.Axes {
		if v, ok := op.Axes.Get(a); ok {
			loc.SetComponent(a, v.Value)
		}
	}
	return loc
}

// moveOrigin moves the object's origin without moving its visible
// geometry: the location changes and every point shifts back by the
// same delta.
func moveOrigin(obj *Object, op plan.Operation) {
	before := obj.Location
	obj.Location = setTranslation(obj, op)
	delta := obj.Location.Sub(before)
	if delta == (model.Vec3{}) {
		return
	}

	if obj.Mesh != nil {
		for i := range obj.Mesh.Verts {
			obj.Mesh.Verts[i] = obj.Mesh.Verts[i].Sub(delta)
		}
	}
	if obj.Curve != nil {
		for i := range obj.Curve.Points {
			obj.Curve.Points[i].Co = obj.Curve.Points[i].Co.Sub(delta)
		}
	}
}

// setCoord computes a point's new local coordinate for a coordinate edit
// in the operation's space.
func setCoord(co model.Vec3, obj *Object, op plan.Operation) model.Vec3 {
	if op.Space == model.SpaceGlobal {
		world := obj.World().Add(co)
		for _, a := range model.Axes {
			if v, ok := op.Axes.Get(a); ok {
				world.SetComponent(a, v.Value)
			}
		}
		return world.Sub(obj.World())
	}
	for _, a := range model.Axes {
		if v, ok := op.Axes.Get(a); ok {
			co.SetComponent(a, v.Value)
		}
	}
	return co
}
