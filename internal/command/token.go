// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package command parses the free-form adjust command language.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/jeranaias/madjust-tui/internal/diag"
	"github.com/jeranaias/madjust-tui/internal/model"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrNoAssign - atom contains no '='
	ErrNoAssign = errors.New("missing '='")

	// ErrUnknownKey - key matches no known pattern
	ErrUnknownKey = errors.New("unknown key")

	// ErrBadNumber - value is not a float literal
	ErrBadNumber = errors.New("value is not a number")

	// ErrBadSuffix - value carries an unknown unit suffix
	ErrBadSuffix = errors.New("unknown unit suffix")

	// ErrUnitNotAllowed - unit suffix on a non-rotation atom
	ErrUnitNotAllowed = errors.New("unit suffix only applies to rotation")

	// ErrBadSpace - space directive value not local/global/world
	ErrBadSpace = errors.New("space must be local, global or world")

	// ErrBadTarget - target directive value not a mesh element class
	ErrBadTarget = errors.New("target must be verts, edges, faces or auto")
)

// ParseError describes one atom that could not be used, identified by its
// raw text. Parsing always continues past it.
type ParseError struct {
	// Atom is the raw text of the offending atom
	Atom string

	// Err is the wrapped sentinel error
	Err error
}

// Error implements the error interface.
func (e ParseError) Error() string {
	return fmt.Sprintf("%q: %v", e.Atom, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e ParseError) Unwrap() error { return e.Err }

// Notice converts the parse error into its structured diagnostic form.
func (e ParseError) Notice() diag.Notice {
	kind := diag.KindMalformedValue
	if errors.Is(e.Err, ErrUnknownKey) {
		kind = diag.KindUnknownToken
	}
	return diag.Notice{Kind: kind, Atom: e.Atom, Detail: e.Err.Error()}
}

// =============================================================================
// KEY TABLE
// =============================================================================

// axisKey describes one recognized axis key spelling.
type axisKey struct {
	category model.Category
	bare     bool
	axis     model.Axis
}

var axisKeys = map[string]axisKey{}

var attrKeys = map[string]model.CurveAttr{
	"weight": model.AttrWeight,
	"radius": model.AttrRadius,
	"tilt":   model.AttrTilt,
}

func init() {
	prefixed := map[string]model.Category{
		"loc.":    model.CategoryLocation,
		"rot.":    model.CategoryRotation,
		"scale.":  model.CategoryScale,
		"s.":      model.CategoryScale,
		"origin.": model.CategoryOrigin,
		"orig.":   model.CategoryOrigin,
		"o.":      model.CategoryOrigin,
	}
	short := map[string]model.Category{
		"r": model.CategoryRotation,
		"s": model.CategoryScale,
		"o": model.CategoryOrigin,
	}
	for _, a := range model.Axes {
		axisKeys[a.String()] = axisKey{bare: true, axis: a}
		for p, c := range prefixed {
			axisKeys[p+a.String()] = axisKey{category: c, axis: a}
		}
		for p, c := range short {
			axisKeys[p+a.String()] = axisKey{category: c, axis: a}
		}
	}
}

// wordKey reports whether the key takes a word value instead of a number.
func wordKey(key string) bool {
	return key == "space" || key == "target"
}

// =============================================================================
// TOKEN
// =============================================================================

// Token is one parsed key=value atom. Numeric atoms carry Value and Unit;
// the space/target directives carry Text instead.
type Token struct {
	// Raw is the atom exactly as written
	Raw string

	// Key is the lowercased key part
	Key string

	// Value is the parsed numeric value (numeric atoms only)
	Value float64

	// Unit is the parsed unit suffix (numeric atoms only)
	Unit model.Unit

	// Text is the word value of a space/target directive
	Text string
}

// =============================================================================
// TOKENIZER
// =============================================================================

// Tokenize splits a command line into atoms and parses each one. It
// returns the valid tokens in order plus one error per unusable atom.
func Tokenize(line string) ([]Token, []ParseError) {
	atoms := strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	var tokens []Token
	var errs []ParseError
	for _, atom := range atoms {
		tok, err := parseAtom(atom)
		if err != nil {
			errs = append(errs, *err)
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens, errs
}

// parseAtom parses a single atom into a token.
func parseAtom(atom string) (Token, *ParseError) {
	eq := strings.IndexByte(atom, '=')
	if eq < 0 {
		return Token{}, &ParseError{Atom: atom, Err: ErrNoAssign}
	}

	key := strings.ToLower(strings.TrimSpace(atom[:eq]))
	val := strings.TrimSpace(atom[eq+1:])
	tok := Token{Raw: atom, Key: key}

	if wordKey(key) {
		tok.Text = strings.ToLower(val)
		return tok, nil
	}

	if _, ok := axisKeys[key]; !ok {
		if _, ok := attrKeys[key]; !ok {
			return Token{}, &ParseError{Atom: atom, Err: ErrUnknownKey}
		}
	}

	value, unit, err := parseFloatWithUnit(val)
	if err != nil {
		return Token{}, &ParseError{Atom: atom, Err: err}
	}
	tok.Value = value
	tok.Unit = unit
	return tok, nil
}

// parseFloatWithUnit parses a float literal with an optional trailing
// case-insensitive unit suffix: d/deg for degrees, r/rad for radians.
// Scientific notation is accepted ("1.5e-2").
func parseFloatWithUnit(s string) (float64, model.Unit, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, model.UnitDefault, ErrBadNumber
	}

	// Peel trailing letters off as the unit suffix. Exponent markers end
	// in a digit, so they survive this.
	cut := len(s)
	for cut > 0 && unicode.IsLetter(rune(s[cut-1])) {
		cut--
	}
	num, suffix := s[:cut], strings.ToLower(s[cut:])

	value, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, model.UnitDefault, ErrBadNumber
	}

	switch suffix {
	case "":
		return value, model.UnitDefault, nil
	case "d", "deg":
		return value, model.UnitDegrees, nil
	case "r", "rad":
		return value, model.UnitRadians, nil
	default:
		return 0, model.UnitDefault, ErrBadSuffix
	}
}
