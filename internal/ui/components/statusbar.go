// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the madjust TUI.
package components

import (
	"fmt"

	"github.com/jeranaias/madjust-tui/internal/model"
	"github.com/jeranaias/madjust-tui/internal/ui/styles"
	"github.com/jeranaias/madjust-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// StatusBar is the bottom status line: mode, selection stats, last apply
// state, and optional key hints.
type StatusBar struct {
	Mode          model.Mode
	Objects       int
	Selected      int
	LastState     string
	Width         int
	ShowShortcuts bool

	theme *styles.Theme
}

// NewStatusBar creates a status bar with the given theme.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{Width: 80, theme: theme}
}

// View renders the status bar truncated to its width.
func (s *StatusBar) View() string {
	t := s.theme

	left := fmt.Sprintf("%s · %d objects, %d selected", s.Mode, s.Objects, s.Selected)
	if s.LastState != "" {
		left += " · " + s.LastState
	}

	line := t.StatusBar.Render(util.TruncateWidth(left, s.Width))
	if !s.ShowShortcuts {
		return line
	}

	hints := t.StatusKey.Render("tab") + t.StatusBar.Render(" category  ") +
		t.StatusKey.Render("x/y/z") + t.StatusBar.Render(" axes  ") +
		t.StatusKey.Render(":") + t.StatusBar.Render(" command  ") +
		t.StatusKey.Render("a") + t.StatusBar.Render(" apply  ") +
		t.StatusKey.Render("q") + t.StatusBar.Render(" quit")
	return line + "\n" + hints
}
