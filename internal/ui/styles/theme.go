// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the madjust TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// =============================================================================
// THEME
// =============================================================================

// Theme bundles the prebuilt styles the panel renders with.
type Theme struct {
	// ColorProfile is the detected terminal color capability
	ColorProfile termenv.Profile

	// DarkBackground is the detected background
	DarkBackground bool

	Title       lipgloss.Style
	Box         lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	ToggleOn    lipgloss.Style
	ToggleOff   lipgloss.Style
	Cursor      lipgloss.Style
	Notice      lipgloss.Style
	Rejected    lipgloss.Style
	Executed    lipgloss.Style
	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style
	Hint        lipgloss.Style
}

// NewTheme builds the default theme for the current terminal.
func NewTheme() *Theme {
	return &Theme{
		ColorProfile:   termenv.ColorProfile(),
		DarkBackground: termenv.HasDarkBackground(),

		Title: lipgloss.NewStyle().
			Foreground(Purple).
			Bold(true),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Overlay).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Foreground(Purple).
			Bold(true).
			Underline(true),

		TabInactive: lipgloss.NewStyle().
			Foreground(TextMuted),

		Label: lipgloss.NewStyle().
			Foreground(TextSecondary),

		Value: lipgloss.NewStyle().
			Foreground(TextPrimary),

		ToggleOn: lipgloss.NewStyle().
			Foreground(Emerald).
			Bold(true),

		ToggleOff: lipgloss.NewStyle().
			Foreground(TextMuted),

		Cursor: lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true),

		Notice: lipgloss.NewStyle().
			Foreground(Amber),

		Rejected: lipgloss.NewStyle().
			Foreground(Rose).
			Bold(true),

		Executed: lipgloss.NewStyle().
			Foreground(Emerald).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(TextSecondary),

		StatusKey: lipgloss.NewStyle().
			Foreground(Cyan),

		Hint: lipgloss.NewStyle().
			Foreground(TextMuted).
			Italic(true),
	}
}
