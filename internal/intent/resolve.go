// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package intent turns classified command assignments plus a panel
// snapshot into a single resolved edit intent.
package intent

import (
	"github.com/jeranaias/madjust-tui/internal/diag"
	"github.com/jeranaias/madjust-tui/internal/model"
)

// =============================================================================
// PRIORITY RESOLVER
// =============================================================================

// Resolve arbitrates a draft into the final intent. When assignments from
// more than one category are present, the highest-precedence category
// wins (Rotation > Scale > Origin > Location); everything belonging to a
// losing category is dropped and reported as superseded. Rotation and
// Scale are Local-only, so a Global frame is downgraded here with a
// notice.
func Resolve(d Draft) (Intent, []diag.Notice) {
	var notices []diag.Notice

	out := Intent{
		Mode:   d.Mode,
		Space:  d.Space,
		Target: d.Target,
	}

	// Pick the winning category among command assignments.
	winner := model.CategoryNone
	for _, a := range d.Tagged {
		if a.Category.Precedence() > winner.Precedence() {
			winner = a.Category
		}
	}

	switch {
	case winner != model.CategoryNone:
		out.Category = winner
		for _, a := range d.Tagged {
			if a.Category != winner {
				notices = append(notices, diag.Notice{
					Kind:     diag.KindSupersededCategory,
					Atom:     a.Atom,
					Category: a.Category,
					Detail:   winner.String(),
				})
				continue
			}
			out.Axes.Put(a.Axis, a.Value, a.Unit)
		}
		// Panel values only fill in when the command stayed on the
		// panel's own tab; axes of a different tab belong to a
		// different category.
		if winner == d.Panel.Category {
			out.Axes = out.Axes.Merge(d.Panel.AxisValues())
		}

	case d.Mode == model.ModeObject:
		// No category-tagged tokens: the panel's selected tab applies.
		out.Category = d.Panel.Category
		out.Axes = d.Panel.AxisValues()

	default:
		// Mesh/curve coordinate edit.
		out.Axes = d.Coords.Merge(d.Panel.AxisValues())
	}

	if d.Mode == model.ModeEditCurve {
		panelAttrs := AttrSet{
			Weight: d.Panel.AttrValue(model.AttrWeight),
			Radius: d.Panel.AttrValue(model.AttrRadius),
			Tilt:   d.Panel.AttrValue(model.AttrTilt),
		}
		out.Attrs = d.Attrs.merge(panelAttrs)
	}

	if d.Mode == model.ModeObject {
		out.Viewport, out.Render = d.Panel.Visibility()
	}

	// Rotation and Scale only ever apply in local space.
	if out.Space == model.SpaceGlobal &&
		(out.Category == model.CategoryRotation || out.Category == model.CategoryScale) {
		out.Space = model.SpaceLocal
		notices = append(notices, diag.Notice{
			Kind:     diag.KindSpaceDowngrade,
			Category: out.Category,
		})
	}

	return out, notices
}
