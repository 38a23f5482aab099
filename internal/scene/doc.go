// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package scene is the in-memory scene the engine's plans execute
// against: objects with transforms and visibility flags, plus optional
// mesh and curve data with element selections.
//
// The package plays the three collaborator roles the engine expects:
// selection provider (Scene.Selection), scene-mutation executor
// (Scene.Apply, implementing plan.Executor), and scene persistence (TOML
// load/save plus an fsnotify-based file watcher for live reload).
//
// Coordinate math is deliberately minimal: an object's world position is
// its parent offset plus its location, so Global-space edits are
// observable without transform matrices.
package scene
