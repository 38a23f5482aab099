// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package command parses the free-form adjust command language.
//
// A command line is a sequence of whitespace- or comma-separated atoms of
// the form key=value. Parsing is best-effort: malformed or unrecognized
// atoms become individual parse errors while the remaining atoms still
// apply. Tokenizing and classifying are pure; the same input always yields
// the same tokens and errors.
//
// # Grammar
//
//	x=0 y=1 z=2              bare axes (location or raw coordinate by context)
//	rx=45 rot.y=90           rotation axes, degrees by default
//	ry=1.57rad rz=90deg      explicit unit suffixes (rotation only)
//	sx=2 scale.z=1.2 s.y=1   scale axes
//	ox=0 origin.z=0 o.y=1    origin axes (orig. also accepted)
//	loc.x=0                  location axes
//	space=local|global|world coordinate frame directive
//	target=verts|edges|faces|auto  mesh element directive (v/e/f accepted)
//	weight=1 radius=2 tilt=45      curve point attributes
//
// # Pipeline
//
//	tokens, errs := command.Tokenize(line)
//	asgs, cerrs := command.ClassifyAll(tokens)
//
// Assignments feed the intent builder; errors map to diagnostics via
// ParseError.Notice.
package command
