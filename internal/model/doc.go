// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the shared domain types for batch transform edits.
//
// This package defines the vocabulary used by every other layer: axes,
// transform categories, coordinate spaces, mesh targets, visibility
// channels, and the optional per-axis value set that carries "set this
// component, leave the others alone" semantics through the pipeline.
//
// # Key Types
//
//   - Axis: X/Y/Z component selector
//   - Category: Location/Rotation/Scale/Origin transform category
//   - Space: Local vs Global coordinate frame ("world" is an alias)
//   - MeshTarget: which mesh element class a coordinate edit resolves against
//   - AxisValueSet: three optional axis values; unset axes are never touched
//   - Vec3: plain three-component vector for scene data
//
// # Usage
//
//	var set model.AxisValueSet
//	set.Put(model.AxisX, 45, model.UnitDegrees)
//	if v, ok := set.Get(model.AxisZ); !ok {
//	    // Z stays untouched on every target
//	}
package model
