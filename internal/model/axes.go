// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the shared domain types for batch transform edits.
package model

import "math"

// =============================================================================
// VALUE UNITS
// =============================================================================

// Unit marks how a numeric value's unit was written in the source atom.
// Only rotation values carry a meaningful unit; the default for rotation
// is degrees.
type Unit int

const (
	// UnitDefault - no suffix written; rotation values default to degrees
	UnitDefault Unit = iota

	// UnitDegrees - explicit "d"/"deg" suffix
	UnitDegrees

	// UnitRadians - explicit "r"/"rad" suffix
	UnitRadians
)

// String returns the suffix spelling of the unit.
func (u Unit) String() string {
	switch u {
	case UnitDegrees:
		return "deg"
	case UnitRadians:
		return "rad"
	default:
		return ""
	}
}

// =============================================================================
// OPTIONAL VALUES
// =============================================================================

// OptValue is an optional float with its source unit. The zero value is
// "unset", which downstream layers must leave untouched on every target.
type OptValue struct {
	Set   bool
	Value float64
	Unit  Unit
}

// Degrees returns the value converted to degrees. Values without an
// explicit unit are already degrees; the conversion happens exactly once,
// here, at the point of use.
func (v OptValue) Degrees() float64 {
	if v.Unit == UnitRadians {
		return v.Value * 180 / math.Pi
	}
	return v.Value
}

// =============================================================================
// AXIS VALUE SET
// =============================================================================

// AxisValueSet holds up to three optional axis values. An axis that is
// unset here was mentioned by neither the panel nor the command and must
// not be mutated by the executor.
type AxisValueSet struct {
	X OptValue
	Y OptValue
	Z OptValue
}

// Put records a value for the given axis.
func (s *AxisValueSet) Put(a Axis, value float64, unit Unit) {
	v := OptValue{Set: true, Value: value, Unit: unit}
	switch a {
	case AxisX:
		s.X = v
	case AxisY:
		s.Y = v
	case AxisZ:
		s.Z = v
	}
}

// Get returns the value for the given axis and whether it is set.
func (s AxisValueSet) Get(a Axis) (OptValue, bool) {
	switch a {
	case AxisX:
		return s.X, s.X.Set
	case AxisY:
		return s.Y, s.Y.Set
	case AxisZ:
		return s.Z, s.Z.Set
	default:
		return OptValue{}, false
	}
}

// Any reports whether at least one axis is set.
func (s AxisValueSet) Any() bool {
	return s.X.Set || s.Y.Set || s.Z.Set
}

// Count returns how many axes are set.
func (s AxisValueSet) Count() int {
	n := 0
	for _, a := range Axes {
		if _, ok := s.Get(a); ok {
			n++
		}
	}
	return n
}

// Merge returns a copy of s with unset axes filled from other. Axes
// already set in s keep their values.
func (s AxisValueSet) Merge(other AxisValueSet) AxisValueSet {
	out := s
	if !out.X.Set {
		out.X = other.X
	}
	if !out.Y.Set {
		out.Y = other.Y
	}
	if !out.Z.Set {
		out.Z = other.Z
	}
	return out
}

// =============================================================================
// VEC3
// =============================================================================

// Vec3 is a plain three-component vector used by scene data.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Component returns the component selected by the axis.
func (v Vec3) Component(a Axis) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	default:
		return 0
	}
}

// SetComponent sets the component selected by the axis.
func (v *Vec3) SetComponent(a Axis, f float64) {
	switch a {
	case AxisX:
		v.X = f
	case AxisY:
		v.Y = f
	case AxisZ:
		v.Z = f
	}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}
