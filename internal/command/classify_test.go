// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package command

import (
	"errors"
	"testing"

	"github.com/jeranaias/madjust-tui/internal/model"
)

func classifyOne(t *testing.T, atom string) Assignment {
	t.Helper()
	tokens, errs := Tokenize(atom)
	if len(errs) != 0 {
		t.Fatalf("%q: tokenize errors: %v", atom, errs)
	}
	a, err := Classify(tokens[0])
	if err != nil {
		t.Fatalf("%q: classify: %v", atom, err)
	}
	return a
}

func TestClassifyAxis(t *testing.T) {
	a := classifyOne(t, "rot.y=1.57rad")
	if a.Kind != AssignAxis {
		t.Fatalf("kind = %v", a.Kind)
	}
	if a.Category != model.CategoryRotation || a.Axis != model.AxisY {
		t.Errorf("assignment = %+v", a)
	}
	if a.Unit != model.UnitRadians || a.Value != 1.57 {
		t.Errorf("value = %v unit = %v", a.Value, a.Unit)
	}

	bare := classifyOne(t, "x=5")
	if !bare.Bare || bare.Category != model.CategoryNone {
		t.Errorf("bare axis = %+v", bare)
	}
}

func TestClassifyDirectives(t *testing.T) {
	s := classifyOne(t, "space=world")
	if s.Kind != AssignSpace || s.Space != model.SpaceGlobal {
		t.Errorf("space=world = %+v", s)
	}

	tgt := classifyOne(t, "target=f")
	if tgt.Kind != AssignTarget || tgt.Target != model.TargetFaces {
		t.Errorf("target=f = %+v", tgt)
	}
}

func TestClassifyCurveAttr(t *testing.T) {
	a := classifyOne(t, "weight=0.5")
	if a.Kind != AssignCurveAttr || a.Attr != model.AttrWeight || a.Value != 0.5 {
		t.Errorf("weight=0.5 = %+v", a)
	}
}

func TestClassifyErrors(t *testing.T) {
	tests := []struct {
		atom string
		want error
	}{
		{"space=sideways", ErrBadSpace},
		{"target=bones", ErrBadTarget},
		{"sx=2rad", ErrUnitNotAllowed},
		{"x=5deg", ErrUnitNotAllowed},
		{"weight=1rad", ErrUnitNotAllowed},
	}
	for _, tt := range tests {
		tokens, errs := Tokenize(tt.atom)
		if len(errs) != 0 {
			t.Fatalf("%q: tokenize errors: %v", tt.atom, errs)
		}
		_, err := Classify(tokens[0])
		if err == nil {
			t.Errorf("%q: want error", tt.atom)
			continue
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("%q: got %v, want %v", tt.atom, err, tt.want)
		}
	}
}

func TestClassifyAllAccumulates(t *testing.T) {
	tokens, _ := Tokenize("rx=45 space=nowhere sy=2")
	asgs, errs := ClassifyAll(tokens)
	if len(asgs) != 2 {
		t.Errorf("want 2 assignments, got %d", len(asgs))
	}
	if len(errs) != 1 || !errors.Is(errs[0], ErrBadSpace) {
		t.Errorf("errs = %v", errs)
	}
}
