// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diag defines the structured diagnostics an apply invocation
// produces: informational notices that never block execution and rejection
// reasons that leave the plan empty. The engine only emits these values;
// turning them into user-facing text is the UI's job, with String methods
// provided as a plain default.
package diag

import (
	"fmt"

	"github.com/jeranaias/madjust-tui/internal/model"
)

// =============================================================================
// NOTICES
// =============================================================================

// Kind classifies an informational notice.
type Kind int

const (
	// KindUnknownToken - atom matched no known key pattern
	KindUnknownToken Kind = iota

	// KindMalformedValue - key recognized, value or unit suffix invalid
	KindMalformedValue

	// KindSupersededCategory - axis assignment dropped by precedence
	KindSupersededCategory

	// KindSpaceDowngrade - Global requested for a Local-only category
	KindSpaceDowngrade
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUnknownToken:
		return "unknown token"
	case KindMalformedValue:
		return "malformed value"
	case KindSupersededCategory:
		return "superseded"
	case KindSpaceDowngrade:
		return "space downgrade"
	default:
		return "notice"
	}
}

// Notice is one informational diagnostic. All notices are non-fatal;
// the invocation still produces whatever plan it can.
type Notice struct {
	// Kind classifies the notice
	Kind Kind

	// Atom is the raw command atom that triggered it, when one did
	Atom string

	// Category is the transform category involved, when one is
	Category model.Category

	// Detail is extra context (e.g. the underlying parse error text)
	Detail string
}

// String renders a plain single-line form of the notice.
func (n Notice) String() string {
	switch n.Kind {
	case KindUnknownToken:
		return fmt.Sprintf("ignored unknown token %q", n.Atom)
	case KindMalformedValue:
		if n.Detail != "" {
			return fmt.Sprintf("ignored %q: %s", n.Atom, n.Detail)
		}
		return fmt.Sprintf("ignored malformed value in %q", n.Atom)
	case KindSupersededCategory:
		return fmt.Sprintf("%q dropped: %s is superseded by %s", n.Atom, n.Category, n.Detail)
	case KindSpaceDowngrade:
		return fmt.Sprintf("%s only applies in Local space; Global request downgraded", n.Category)
	default:
		return n.Detail
	}
}

// =============================================================================
// REJECTION REASONS
// =============================================================================

// Reason explains why an invocation produced an empty, rejected plan.
// ReasonNone means the plan went through.
type Reason int

const (
	ReasonNone Reason = iota

	// ReasonEmptyCommand - the command line held no atoms at all
	ReasonEmptyCommand

	// ReasonNoSelection - whole-object apply with zero selected objects
	ReasonNoSelection

	// ReasonWrongContext - the edit does not fit the current mode
	ReasonWrongContext

	// ReasonNoPoints - target resolution produced zero points
	ReasonNoPoints

	// ReasonNoAxisEnabled - nothing to change: no axis values, no
	// attributes, no visibility flags
	ReasonNoAxisEnabled
)

// String returns the user-facing rejection message.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return ""
	case ReasonEmptyCommand:
		return "empty command"
	case ReasonNoSelection:
		return "no selected objects"
	case ReasonWrongContext:
		return "need a mesh in edit mode"
	case ReasonNoPoints:
		return "no verts resolved from selection"
	case ReasonNoAxisEnabled:
		return "no axis enabled"
	default:
		return "rejected"
	}
}
