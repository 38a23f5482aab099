// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package scene is the in-memory scene the engine's plans execute against.
package scene

import "github.com/jeranaias/madjust-tui/internal/model"

// Demo returns a small starter scene: two selected cubes and a curve,
// used when no scene file is given.
func Demo() *Scene {
	cube := NewObject("Cube")
	cube.Selected = true
	cube.Mesh = unitCube()

	cube2 := NewObject("Cube.001")
	cube2.Selected = true
	cube2.Location = model.Vec3{X: 3}
	cube2.ParentOffset = model.Vec3{Y: 1}
	cube2.Mesh = unitCube()

	curveObj := NewObject("BezierCircle")
	curveObj.Curve = &Curve{Points: []CurvePoint{
		{Co: model.Vec3{X: 1}, Weight: 1, Radius: 1, Selected: true},
		{Co: model.Vec3{Y: 1}, Weight: 1, Radius: 1, Selected: true},
		{Co: model.Vec3{X: -1}, Weight: 1, Radius: 1},
		{Co: model.Vec3{Y: -1}, Weight: 1, Radius: 1},
	}}

	sc := New()
	sc.Objects = []*Object{cube, cube2, curveObj}
	sc.Active = cube.ID
	return sc
}

// unitCube builds a 2x2x2 cube mesh centered on the origin with the
// bottom face selected.
func unitCube() *Mesh {
	return &Mesh{
		Verts: []model.Vec3{
			{X: -1, Y: -1, Z: -1},
			{X: 1, Y: -1, Z: -1},
			{X: 1, Y: 1, Z: -1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1},
			{X: 1, Y: -1, Z: 1},
			{X: 1, Y: 1, Z: 1},
			{X: -1, Y: 1, Z: 1},
		},
		Edges: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
		Faces: [][]int{
			{0, 1, 2, 3},
			{4, 5, 6, 7},
			{0, 1, 5, 4},
			{2, 3, 7, 6},
			{0, 3, 7, 4},
			{1, 2, 6, 5},
		},
		SelectedVerts: []int{0, 1, 2, 3},
		SelectedFaces: []int{0},
	}
}
