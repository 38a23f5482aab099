// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package command

import (
	"errors"
	"testing"

	"github.com/jeranaias/madjust-tui/internal/model"
)

func TestTokenizeBasic(t *testing.T) {
	tokens, errs := Tokenize("rx=45 sx=2 space=global")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(tokens) != 3 {
		t.Fatalf("want 3 tokens, got %d", len(tokens))
	}
	if tokens[0].Key != "rx" || tokens[0].Value != 45 {
		t.Errorf("token 0 = %+v", tokens[0])
	}
	if tokens[2].Key != "space" || tokens[2].Text != "global" {
		t.Errorf("token 2 = %+v", tokens[2])
	}
}

func TestTokenizeCommaSeparators(t *testing.T) {
	tokens, errs := Tokenize("x=0, z=2,y=-1")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(tokens) != 3 {
		t.Fatalf("want 3 tokens, got %d", len(tokens))
	}
	if tokens[1].Key != "z" || tokens[1].Value != 2 {
		t.Errorf("token 1 = %+v", tokens[1])
	}
}

func TestTokenizeContinuesPastErrors(t *testing.T) {
	tokens, errs := Tokenize("rx=45 bogus=1 y=abc z=2")
	if len(tokens) != 2 {
		t.Fatalf("want 2 valid tokens, got %d", len(tokens))
	}
	if len(errs) != 2 {
		t.Fatalf("want 2 errors, got %d", len(errs))
	}
	if !errors.Is(errs[0], ErrUnknownKey) {
		t.Errorf("errs[0] = %v, want ErrUnknownKey", errs[0])
	}
	if !errors.Is(errs[1], ErrBadNumber) {
		t.Errorf("errs[1] = %v, want ErrBadNumber", errs[1])
	}
	if tokens[1].Key != "z" {
		t.Errorf("last valid token = %+v", tokens[1])
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		atom string
		want error
	}{
		{"rx", ErrNoAssign},
		{"rotate.x=5", ErrUnknownKey},
		{"x=", ErrBadNumber},
		{"x=1.2.3", ErrBadNumber},
		{"rx=45q", ErrBadSuffix},
	}
	for _, tt := range tests {
		_, errs := Tokenize(tt.atom)
		if len(errs) != 1 {
			t.Errorf("%q: want 1 error, got %d", tt.atom, len(errs))
			continue
		}
		if !errors.Is(errs[0], tt.want) {
			t.Errorf("%q: got %v, want %v", tt.atom, errs[0], tt.want)
		}
		if errs[0].Atom != tt.atom {
			t.Errorf("%q: error atom = %q", tt.atom, errs[0].Atom)
		}
	}
}

func TestParseFloatWithUnit(t *testing.T) {
	tests := []struct {
		in    string
		value float64
		unit  model.Unit
		ok    bool
	}{
		{"45", 45, model.UnitDefault, true},
		{"-1.5", -1.5, model.UnitDefault, true},
		{"45d", 45, model.UnitDegrees, true},
		{"45deg", 45, model.UnitDegrees, true},
		{"1.57r", 1.57, model.UnitRadians, true},
		{"1.57rad", 1.57, model.UnitRadians, true},
		{"90D", 90, model.UnitDegrees, true},
		{"1.5e-2", 0.015, model.UnitDefault, true},
		{"", 0, model.UnitDefault, false},
		{"deg", 0, model.UnitDefault, false},
		{"45x", 0, model.UnitDefault, false},
	}
	for _, tt := range tests {
		value, unit, err := parseFloatWithUnit(tt.in)
		if tt.ok != (err == nil) {
			t.Errorf("%q: err = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if !tt.ok {
			continue
		}
		if value != tt.value || unit != tt.unit {
			t.Errorf("%q: got (%v, %v), want (%v, %v)", tt.in, value, unit, tt.value, tt.unit)
		}
	}
}

func TestAxisKeyAliases(t *testing.T) {
	tests := []struct {
		key      string
		category model.Category
		bare     bool
		axis     model.Axis
	}{
		{"x", model.CategoryNone, true, model.AxisX},
		{"loc.y", model.CategoryLocation, false, model.AxisY},
		{"rot.z", model.CategoryRotation, false, model.AxisZ},
		{"rx", model.CategoryRotation, false, model.AxisX},
		{"scale.y", model.CategoryScale, false, model.AxisY},
		{"s.y", model.CategoryScale, false, model.AxisY},
		{"sy", model.CategoryScale, false, model.AxisY},
		{"origin.z", model.CategoryOrigin, false, model.AxisZ},
		{"orig.z", model.CategoryOrigin, false, model.AxisZ},
		{"o.z", model.CategoryOrigin, false, model.AxisZ},
		{"oz", model.CategoryOrigin, false, model.AxisZ},
	}
	for _, tt := range tests {
		k, ok := axisKeys[tt.key]
		if !ok {
			t.Errorf("%q: not recognized", tt.key)
			continue
		}
		if k.category != tt.category || k.bare != tt.bare || k.axis != tt.axis {
			t.Errorf("%q: got %+v", tt.key, k)
		}
	}
}

func TestKeysAreCaseInsensitive(t *testing.T) {
	tokens, errs := Tokenize("RX=45 Space=GLOBAL")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if tokens[0].Key != "rx" {
		t.Errorf("key = %q, want rx", tokens[0].Key)
	}
	if tokens[1].Text != "global" {
		t.Errorf("text = %q, want global", tokens[1].Text)
	}
}
