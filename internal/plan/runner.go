// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package plan converts resolved edit intents into ordered per-entity
// operation lists and drives one apply invocation end to end.
package plan

import (
	"strings"

	"github.com/jeranaias/madjust-tui/internal/command"
	"github.com/jeranaias/madjust-tui/internal/diag"
	"github.com/jeranaias/madjust-tui/internal/intent"
	"github.com/jeranaias/madjust-tui/internal/panel"
)

// =============================================================================
// APPLY STATE
// =============================================================================

// State is how far an apply invocation progressed.
type State int

const (
	StateIdle State = iota
	StateParsed
	StateClassified
	StateIntentBuilt
	StateResolved
	StatePlanned

	// StateExecuted - terminal: plan handed to the executor
	StateExecuted

	// StateRejected - terminal: plan empty or execution refused
	StateRejected
)

// String returns the display name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateParsed:
		return "Parsed"
	case StateClassified:
		return "Classified"
	case StateIntentBuilt:
		return "Intent Built"
	case StateResolved:
		return "Resolved"
	case StatePlanned:
		return "Planned"
	case StateExecuted:
		return "Executed"
	case StateRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// =============================================================================
// COLLABORATOR INTERFACES
// =============================================================================

// Executor applies a finished plan to the scene. It owns all coordinate
// math and space conversion; this package never touches entity data.
type Executor interface {
	Apply(EditPlan) error
}

// =============================================================================
// RESULT
// =============================================================================

// Result is everything one apply invocation produced. No partial
// execution is observable: the plan either ran in full or not at all.
type Result struct {
	// State is the terminal (or furthest) pipeline state
	State State

	// Reason is set when State is StateRejected
	Reason diag.Reason

	// Tokens are the valid parsed tokens, in order
	Tokens []command.Token

	// Intent is the resolved intent, once built
	Intent intent.Intent

	// Plan is the dispatched plan, empty when rejected
	Plan EditPlan

	// Notices are all informational diagnostics, including parse errors
	// in structured form
	Notices []diag.Notice

	// ExecErr is a failure reported by the executor
	ExecErr error
}

// Rejected reports whether the invocation ended without executing.
func (r Result) Rejected() bool {
	return r.State == StateRejected
}

// =============================================================================
// RUNNER
// =============================================================================

// RunCommand drives a full command-line invocation: tokenize, classify,
// build, resolve, dispatch, execute. Panel state is snapshotted by value
// at entry; nothing here suspends or runs in the background.
func RunCommand(line string, snap panel.State, sel Selection, exec Executor) Result {
	res := Result{State: StateIdle}

	if strings.TrimSpace(line) == "" {
		res.State = StateRejected
		res.Reason = diag.ReasonEmptyCommand
		return res
	}

	tokens, parseErrs := command.Tokenize(line)
	res.Tokens = tokens
	res.State = StateParsed
	for _, e := range parseErrs {
		res.Notices = append(res.Notices, e.Notice())
	}

	asgs, classErrs := command.ClassifyAll(tokens)
	res.State = StateClassified
	for _, e := range classErrs {
		res.Notices = append(res.Notices, e.Notice())
	}

	draft := intent.Build(snap, asgs, sel.Mode)
	res.State = StateIntentBuilt

	return finish(res, draft, sel, exec)
}

// RunPanel drives a structured-panel invocation (the Apply button): the
// intent comes entirely from the panel snapshot, with no command tokens.
func RunPanel(snap panel.State, sel Selection, exec Executor) Result {
	res := Result{State: StateIdle}
	draft := intent.Build(snap, nil, sel.Mode)
	res.State = StateIntentBuilt
	return finish(res, draft, sel, exec)
}

// finish runs the shared resolve/dispatch/execute tail.
func finish(res Result, draft intent.Draft, sel Selection, exec Executor) Result {
	resolved, notices := intent.Resolve(draft)
	res.Intent = resolved
	res.Notices = append(res.Notices, notices...)
	res.State = StateResolved

	p, reason := Dispatch(resolved, sel)
	if reason != diag.ReasonNone {
		res.State = StateRejected
		res.Reason = reason
		return res
	}
	res.Plan = p
	res.State = StatePlanned

	if exec == nil {
		return res
	}
	if err := exec.Apply(p); err != nil {
		res.State = StateRejected
		res.ExecErr = err
		return res
	}
	res.State = StateExecuted
	return res
}
