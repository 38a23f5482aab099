// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package plan converts resolved edit intents into ordered per-entity
// operation lists and drives one apply invocation end to end.
//
// The dispatcher pairs an intent with a selection snapshot and emits an
// EditPlan: one operation per selected object, or per resolved mesh or
// curve point. A plan is all-or-nothing; if the selection is empty, the
// context is wrong, or the intent changes nothing, the whole invocation
// is rejected with a reason and no partial plan exists.
//
// # Apply state machine
//
//	Idle -> Parsed -> Classified -> IntentBuilt -> Resolved -> Planned
//	     -> Executed | Rejected
//
// Runner walks these states synchronously within a single call; there are
// no suspension points and no shared mutable state between invocations.
package plan
