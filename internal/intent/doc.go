// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package intent turns classified command assignments plus a panel
// snapshot into a single resolved edit intent.
//
// Build merges the two sources: command tokens override panel state for
// the axes and directives they mention, panel state supplies everything
// the command omits. Resolve then enforces the one-category-per-invocation
// rule with the fixed precedence Rotation > Scale > Origin > Location,
// dropping and reporting assignments from superseded categories.
package intent
