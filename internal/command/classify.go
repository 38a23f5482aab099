// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package command parses the free-form adjust command language.
package command

import (
	"github.com/jeranaias/madjust-tui/internal/model"
)

// =============================================================================
// ASSIGNMENT
// =============================================================================

// AssignKind says which semantic group a classified token belongs to.
type AssignKind int

const (
	// AssignAxis - an axis value assignment, possibly category-tagged
	AssignAxis AssignKind = iota

	// AssignSpace - a space directive
	AssignSpace

	// AssignTarget - a mesh target directive
	AssignTarget

	// AssignCurveAttr - a curve point attribute assignment
	AssignCurveAttr
)

// Assignment is the classified form of a token, independent of execution
// context. Bare axis assignments carry no category; the intent builder
// resolves them from context.
type Assignment struct {
	// Kind selects which of the remaining fields are meaningful
	Kind AssignKind

	// Atom is the raw source atom, kept for diagnostics
	Atom string

	// Category tags axis assignments; CategoryNone for bare axes
	Category model.Category

	// Bare marks a category-less x=/y=/z= assignment
	Bare bool

	// Axis is the component an axis assignment sets
	Axis model.Axis

	// Value and Unit carry the numeric payload
	Value float64
	Unit  model.Unit

	// Space is the directive payload for AssignSpace
	Space model.Space

	// Target is the directive payload for AssignTarget
	Target model.MeshTarget

	// Attr is the attribute an AssignCurveAttr sets
	Attr model.CurveAttr
}

// =============================================================================
// CLASSIFIER
// =============================================================================

// Classify maps one token to its semantic assignment. It is a pure
// function of the token.
func Classify(t Token) (Assignment, *ParseError) {
	switch t.Key {
	case "space":
		space, ok := model.ParseSpace(t.Text)
		if !ok {
			return Assignment{}, &ParseError{Atom: t.Raw, Err: ErrBadSpace}
		}
		return Assignment{Kind: AssignSpace, Atom: t.Raw, Space: space}, nil

	case "target":
		target, ok := model.ParseMeshTarget(t.Text)
		if !ok {
			return Assignment{}, &ParseError{Atom: t.Raw, Err: ErrBadTarget}
		}
		return Assignment{Kind: AssignTarget, Atom: t.Raw, Target: target}, nil
	}

	if attr, ok := attrKeys[t.Key]; ok {
		if t.Unit != model.UnitDefault {
			return Assignment{}, &ParseError{Atom: t.Raw, Err: ErrUnitNotAllowed}
		}
		return Assignment{Kind: AssignCurveAttr, Atom: t.Raw, Attr: attr, Value: t.Value}, nil
	}

	key, ok := axisKeys[t.Key]
	if !ok {
		return Assignment{}, &ParseError{Atom: t.Raw, Err: ErrUnknownKey}
	}
	if key.category != model.CategoryRotation && t.Unit != model.UnitDefault {
		return Assignment{}, &ParseError{Atom: t.Raw, Err: ErrUnitNotAllowed}
	}
	return Assignment{
		Kind:     AssignAxis,
		Atom:     t.Raw,
		Category: key.category,
		Bare:     key.bare,
		Axis:     key.axis,
		Value:    t.Value,
		Unit:     t.Unit,
	}, nil
}

// ClassifyAll classifies tokens in order, accumulating per-atom errors
// without stopping.
func ClassifyAll(tokens []Token) ([]Assignment, []ParseError) {
	var asgs []Assignment
	var errs []ParseError
	for _, t := range tokens {
		a, err := Classify(t)
		if err != nil {
			errs = append(errs, *err)
			continue
		}
		asgs = append(asgs, a)
	}
	return asgs, errs
}
